package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/access"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// JWTConfig configuración para emisión de credenciales.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Options parámetros opcionales del caso de uso.
type Options struct {
	BcryptCost    int // 0 = bcrypt.DefaultCost
	MaxConcurrent int // comparaciones/hashes bcrypt simultáneos; 0 = 8
	Logger        *logger.Logger
	Now           func() time.Time // inyectable en tests; nil = time.Now
}

// UseCase casos de uso de autenticación: registro, login y resolución de
// principal. El login resuelve la identidad (cuenta de plataforma primero,
// empleado con contraseña temporal después), agrega permisos por membresía y
// emite la credencial firmada.
type UseCase struct {
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
	bcryptCost   int
	sem          *semaphore.Weighted
	log          *logger.Logger
	now          func() time.Time
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig, opts Options) *UseCase {
	cost := opts.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	maxConc := opts.MaxConcurrent
	if maxConc <= 0 {
		maxConc = 8
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &UseCase{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtCfg:       jwtCfg,
		bcryptCost:   cost,
		sem:          semaphore.NewWeighted(int64(maxConc)),
		log:          log,
		now:          now,
	}
}

// Register crea una cuenta de plataforma: hashea el password con bcrypt y
// persiste. Devuelve ErrEmailAlreadyExists si el email ya está en uso.
// Es el único camino de registro; los empleados se dan de alta desde RRHH.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := uc.hashSecret(ctx, in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         name,
		GlobalRole:   entity.GlobalRoleNone,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login resuelve el principal, calcula el snapshot de permisos por membresía
// y emite la credencial firmada junto a su resumen en claro.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	principal, err := uc.Resolve(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	token, summary, err := uc.Issue(principal)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Claims: summary}, nil
}

// Resolve localiza y valida un principal a partir de email + secreto.
// Orden estricto: la cuenta de plataforma siempre tiene prioridad sobre un
// empleado con el mismo email; solo si no hay cuenta (o su password no
// coincide) se intenta la rama de empleado con contraseña temporal.
// Ningún camino de fallo produce side effects.
func (uc *UseCase) Resolve(ctx context.Context, email, secret string) (access.Principal, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return access.Principal{}, err
	}
	if user != nil {
		ok, err := uc.compareSecret(ctx, user.PasswordHash, secret)
		if err != nil {
			return access.Principal{}, err
		}
		if ok {
			return access.PrincipalFromUser(user), nil
		}
	}

	emp, err := uc.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		return access.Principal{}, err
	}
	if emp == nil || emp.TempPasswordHash == nil {
		return access.Principal{}, domain.ErrInvalidCredentials
	}
	ok, err := uc.compareSecret(ctx, *emp.TempPasswordHash, secret)
	if err != nil {
		return access.Principal{}, err
	}
	if !ok {
		return access.Principal{}, domain.ErrInvalidCredentials
	}
	// El secreto era correcto: la ventana vencida se distingue del mismatch.
	if emp.TempPasswordExpiresAt != nil && uc.now().After(*emp.TempPasswordExpiresAt) {
		return access.Principal{}, domain.ErrTempPasswordExpired
	}

	// Side effect best-effort: un fallo al persistir lastLogin no tumba el login.
	if err := uc.employeeRepo.UpdateLastLogin(ctx, emp.ID, uc.now()); err != nil {
		uc.log.Warn().Err(err).Str("employee_id", emp.ID).Msg("no se pudo actualizar last_login")
	}

	return access.PrincipalFromEmployee(emp), nil
}

// hashSecret genera el hash bcrypt bajo el semáforo: el hash lento no debe
// serializar el resto de peticiones concurrentes.
func (uc *UseCase) hashSecret(ctx context.Context, secret string) (string, error) {
	if err := uc.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer uc.sem.Release(1)
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), uc.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// compareSecret compara bajo el semáforo. Un mismatch devuelve (false, nil);
// error solo ante cancelación de contexto.
func (uc *UseCase) compareSecret(ctx context.Context, hash, secret string) (bool, error) {
	if err := uc.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer uc.sem.Release(1)
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		GlobalRole: u.GlobalRole,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
