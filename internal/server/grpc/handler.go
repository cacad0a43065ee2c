package grpc

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.AuthResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatus(err)
	}

	result, err := s.auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return toResponse(result), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.AuthResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, toStatus(err)
	}

	result, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return toResponse(result), nil
}

// Verify has no shape check: an empty token is just an invalid token.
func (s *GRPCServer) Verify(ctx context.Context, req *api.VerifyRequest) (*api.AuthResponse, error) {
	result, err := s.auth.Verify(ctx, req.Token)
	if err != nil {
		return nil, toStatus(err)
	}
	return toResponse(result), nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks the request shape and reports every offending
// field in one message.
func (s *GRPCServer) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return common.NewRPCError(common.StatusBadRequest, common.MessageInternal, errors.Join(common.ErrorInternal, err))
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return common.NewRPCError(common.StatusBadRequest, strings.Join(msgs, "; "), errors.Join(common.ErrValidation, err))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " should not be empty"
	case "email":
		return fe.Field() + " must be an email"
	case "min":
		return fmt.Sprintf("%s must be longer than or equal to %s characters", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}

// toStatus turns an orchestrator error into a gRPC status carrying the
// structured message. Anything that is not an RPCError is reported as an
// internal fault.
func toStatus(err error) error {
	rpcErr, ok := common.AsRPCError(err)
	if !ok {
		rpcErr = common.NewRPCError(common.StatusBadRequest, common.MessageInternal, err)
	}
	return status.Error(codeFor(rpcErr.Status), rpcErr.Message)
}

func codeFor(httpStatus int) codes.Code {
	switch httpStatus {
	case common.StatusUnauthorized:
		return codes.Unauthenticated
	default:
		return codes.InvalidArgument
	}
}

func toResponse(r *models.AuthResult) *api.AuthResponse {
	return &api.AuthResponse{
		User: api.User{
			ID:    r.User.ID,
			Email: r.User.Email,
			Name:  r.User.Name,
		},
		Token: r.Token,
	}
}
