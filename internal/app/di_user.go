package app

import (
	"fmt"

	authService "github.com/artfolio/gallery/internal/auth/service"
	userHTTP "github.com/artfolio/gallery/internal/user/http"
	userRepository "github.com/artfolio/gallery/internal/user/repository"
	userUsecase "github.com/artfolio/gallery/internal/user/usecase"
)

// tokenIssuer identifies this service in issued access tokens.
const tokenIssuer = "gallery-api"

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the access token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		tokenService, err := authService.NewTokenService(c.config.AuthTokenSecret, tokenIssuer)
		if err != nil {
			c.initErrors["tokenService"] = err
			return
		}
		c.tokenService = tokenService
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		userRepo, err := c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
			return
		}
		c.userRepo = userRepo
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.userUseCaseInit.Do(func() {
		userUseCase, err := c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.userUseCase = userUseCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// AuthHandler returns the HTTP handler for registration, login, and profile.
func (c *Container) AuthHandler() (*userHTTP.AuthHandler, error) {
	c.authHandlerInit.Do(func() {
		authHandler, err := c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
			return
		}
		c.authHandler = authHandler
	})
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// AdminUserHandler returns the HTTP handler for user administration.
func (c *Container) AdminUserHandler() (*userHTTP.AdminUserHandler, error) {
	c.adminUserHandlerInit.Do(func() {
		adminUserHandler, err := c.initAdminUserHandler()
		if err != nil {
			c.initErrors["adminUserHandler"] = err
			return
		}
		c.adminUserHandler = adminUserHandler
	})
	if storedErr, exists := c.initErrors["adminUserHandler"]; exists {
		return nil, storedErr
	}
	return c.adminUserHandler, nil
}

// initUserRepository creates the user repository based on the database driver.
func (c *Container) initUserRepository() (userUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for user use case: %w", err)
	}

	baseUseCase := userUsecase.NewUserUseCase(
		txManager,
		userRepo,
		c.PasswordService(),
		tokenService,
		c.config.AuthTokenExpiration,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUsecase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthHandler creates the auth HTTP handler with all its dependencies.
func (c *Container) initAuthHandler() (*userHTTP.AuthHandler, error) {
	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for auth handler: %w", err)
	}

	expiresIn := int(c.config.AuthTokenExpiration.Seconds())

	return userHTTP.NewAuthHandler(userUseCase, expiresIn, c.Logger()), nil
}

// initAdminUserHandler creates the admin user HTTP handler with all its dependencies.
func (c *Container) initAdminUserHandler() (*userHTTP.AdminUserHandler, error) {
	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for admin user handler: %w", err)
	}

	return userHTTP.NewAdminUserHandler(
		userUseCase,
		c.config.PaginationDefaultPerPage,
		c.config.PaginationMaxPerPage,
		c.Logger(),
	), nil
}
