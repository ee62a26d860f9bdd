package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/monster-maker/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "creature not found",
			expected: "NOT_FOUND: creature not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "no parts to export",
			expected: "FAILED_PRECONDITION: no parts to export",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	testCases := []struct {
		name     string
		err      *errors.Error
		code     errors.Code
		expected string
	}{
		{"not found", errors.NotFoundf("creature %s not found", "bat"), errors.CodeNotFound, "creature bat not found"},
		{"invalid argument", errors.InvalidArgumentf("unknown command %q", "spin"), errors.CodeInvalidArgument, `unknown command "spin"`},
		{"already exists", errors.AlreadyExistsf("creature %s already exists", "bat"), errors.CodeAlreadyExists, "creature bat already exists"},
		{"failed precondition", errors.FailedPreconditionf("need %d creatures", 2), errors.CodeFailedPrecondition, "need 2 creatures"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.code, tc.err.Code)
			s.Equal(tc.expected, tc.err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to list creatures")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to list creatures", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("record not found").WithMeta("creature_id", "c1")
	wrapped := errors.Wrap(baseErr, "creature not found")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("c1", wrapped.Meta["creature_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.New(errors.CodeInternal, "timeout").WithMeta("attempt", 3)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal(3, wrapped.Meta["attempt"])
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.Is(errors.Wrap(errors.NotFound("a"), "b"), errors.NotFound("c")))
	s.False(errors.NotFound("a").Is(errors.Aborted("a")))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.FailedPrecondition("no parts to export").WithMeta("session_id", "s1")
	wrapped := errors.Wrap(err, "export failed")

	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("s1", errors.GetMeta(wrapped)["session_id"])
	s.Equal("export failed", errors.GetMessage(wrapped))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeAlreadyExists, http.StatusConflict},
		{errors.CodeAborted, http.StatusConflict},
		{errors.CodeFailedPrecondition, http.StatusPreconditionFailed},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCStatus() {
	err := errors.Wrap(errors.NotFound("creature not found"), "lookup failed")

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("lookup failed", st.Message())
}
