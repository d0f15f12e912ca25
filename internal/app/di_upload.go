package app

import (
	"fmt"

	uploadHTTP "github.com/artfolio/gallery/internal/upload/http"
	uploadUsecase "github.com/artfolio/gallery/internal/upload/usecase"
)

// UploadUseCase returns the upload use case instance.
func (c *Container) UploadUseCase() (uploadUsecase.UploadUseCase, error) {
	c.uploadUseCaseInit.Do(func() {
		uploadUseCase, err := c.initUploadUseCase()
		if err != nil {
			c.initErrors["uploadUseCase"] = err
			return
		}
		c.uploadUseCase = uploadUseCase
	})
	if storedErr, exists := c.initErrors["uploadUseCase"]; exists {
		return nil, storedErr
	}
	return c.uploadUseCase, nil
}

// UploadHandler returns the HTTP handler for image uploads.
func (c *Container) UploadHandler() (*uploadHTTP.UploadHandler, error) {
	c.uploadHandlerInit.Do(func() {
		uploadHandler, err := c.initUploadHandler()
		if err != nil {
			c.initErrors["uploadHandler"] = err
			return
		}
		c.uploadHandler = uploadHandler
	})
	if storedErr, exists := c.initErrors["uploadHandler"]; exists {
		return nil, storedErr
	}
	return c.uploadHandler, nil
}

// initUploadUseCase creates the upload use case with all its dependencies.
func (c *Container) initUploadUseCase() (uploadUsecase.UploadUseCase, error) {
	store, err := c.Store()
	if err != nil {
		return nil, fmt.Errorf("failed to get blob store for upload use case: %w", err)
	}

	return uploadUsecase.NewUploadUseCase(
		store,
		c.config.UploadMaxBytes,
		c.config.UploadSignedURLExpiration,
	), nil
}

// initUploadHandler creates the upload HTTP handler with all its dependencies.
func (c *Container) initUploadHandler() (*uploadHTTP.UploadHandler, error) {
	uploadUseCase, err := c.UploadUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get upload use case for upload handler: %w", err)
	}

	return uploadHTTP.NewUploadHandler(uploadUseCase, c.Logger()), nil
}
