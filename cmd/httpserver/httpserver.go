// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/private-bank/internal/bankdelivery"
	"github.com/go-petr/private-bank/internal/bankservice"
	"github.com/go-petr/private-bank/internal/domain"
	"github.com/go-petr/private-bank/internal/middleware"
	"github.com/go-petr/private-bank/internal/sessiondelivery"
	"github.com/go-petr/private-bank/internal/sessionservice"
	"github.com/go-petr/private-bank/pkg/configpkg"
	"github.com/go-petr/private-bank/pkg/tokenpkg"
)

// Server holds the bank, handlers router and configuration.
type Server struct {
	Bank   *bankservice.Service
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

var registerValidators sync.Once

// NewBank loads the bank configured by config from repo.
func NewBank(ctx context.Context, config configpkg.Config, repo bankservice.Repo) (*bankservice.Service, error) {
	rate, err := domain.NewInterestRate(
		decimal.NewFromFloat(config.IncomingInterest),
		decimal.NewFromFloat(config.OutgoingInterest),
	)
	if err != nil {
		return nil, fmt.Errorf("configured interest: %w", err)
	}

	return bankservice.New(ctx, config.BankName, rate, repo)
}

// New creates Server type with instantiated domains and routes.
func New(bank *bankservice.Service, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	tokenMaker, err := tokenpkg.New(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	sessionService, err := sessionservice.New(config, tokenMaker)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize session service: %w", err)
	}

	bankHandler := bankdelivery.NewHandler(bank)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/sessions", sessionHandler.Login)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.GET("/bank", bankHandler.GetBank)
	authRoutes.PUT("/bank/interest", bankHandler.SetInterest)

	authRoutes.GET("/accounts", bankHandler.ListAccounts)
	authRoutes.POST("/accounts", bankHandler.CreateAccount)
	authRoutes.DELETE("/accounts/:name", bankHandler.DeleteAccount)
	authRoutes.GET("/accounts/:name/balance", bankHandler.GetBalance)
	authRoutes.GET("/accounts/:name/transactions", bankHandler.ListTransactions)
	authRoutes.POST("/accounts/:name/transactions", bankHandler.AddTransaction)
	authRoutes.POST("/accounts/:name/transactions/remove", bankHandler.RemoveTransaction)
	authRoutes.GET("/accounts/:name/statement", bankHandler.Statement)

	registerValidators.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			err = v.RegisterValidation("accountname", bankdelivery.ValidAccountName)
		}
	})

	if err != nil {
		return nil, errors.New("cannot register accountname validator")
	}

	server := &Server{
		Bank:   bank,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
