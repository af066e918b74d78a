package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/facturio/facturae-party/internal/facturae"
	"github.com/facturio/facturae-party/internal/formatter"
	"github.com/facturio/facturae-party/internal/model"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	Logger       zerolog.Logger
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	formatter *formatter.Formatter
	log       zerolog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	registerValidations()

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		config:    config,
		router:    router,
		formatter: formatter.New(),
		log:       config.Logger,
	}
	router.Use(s.requestLogger())

	s.setupRoutes()
	return s
}

// registerValidations adds the person_type rule to gin's binding validator.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("person_type", func(fl validator.FieldLevel) bool {
		switch model.PersonType(fl.Field().String()) {
		case model.PersonTypeLegal, model.PersonTypeNatural:
			return true
		}
		return false
	})
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/format/centre", s.handleFormatCentre)
		v1.POST("/format/party", s.handleFormatParty)
		v1.POST("/validate", s.handleValidate)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		s.log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleFormatCentre(c *gin.Context) {
	var req FormatCentreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	role := model.Role{CentreCode: req.CentreCode, RoleTypeCode: req.RoleTypeCode}
	centre, err := s.formatter.AdministrativeCentre(role, req.Party.toModel())
	if err != nil {
		s.formatterError(c, err)
		return
	}

	frag, err := facturae.Fragment(centre)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, FragmentResponse{Fragment: frag})
}

func (s *Server) handleFormatParty(c *gin.Context) {
	var req FormatPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	party := req.Party.toModel()

	block, err := s.formatter.Party(party)
	if err != nil {
		s.formatterError(c, err)
		return
	}

	var resp PartyFragmentsResponse
	if block.LegalEntity != nil {
		resp.Party, err = facturae.Fragment(block.LegalEntity)
	} else {
		resp.Party, err = facturae.Fragment(block.Individual)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if party.TaxID != "" {
		taxID, err := s.formatter.TaxIdentification(party)
		if err != nil {
			s.formatterError(c, err)
			return
		}
		resp.TaxIdentification, err = facturae.Fragment(taxID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	party := req.Party.toModel()
	var problems []string

	// The role codes are opaque passthrough values, so placeholders are
	// enough to exercise the centre formatter.
	role := model.Role{CentreCode: "0000", RoleTypeCode: "01"}
	if _, err := s.formatter.AdministrativeCentre(role, party); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := s.formatter.Party(party); err != nil {
		problems = append(problems, err.Error())
	}
	if party.TaxID != "" {
		if _, err := s.formatter.TaxIdentification(party); err != nil {
			problems = append(problems, err.Error())
		}
	}

	c.JSON(http.StatusOK, ValidationResponse{
		Valid:  len(problems) == 0,
		Errors: problems,
	})
}

// formatterError maps formatter failures to API responses. Missing required
// fields are the caller's data problem, not ours.
func (s *Server) formatterError(c *gin.Context, err error) {
	var missing *model.MissingFieldError
	if errors.As(err, &missing) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: missing.Error(),
			Field: missing.Field,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
