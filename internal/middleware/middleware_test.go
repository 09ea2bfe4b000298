package middleware

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/restauflow/internal/auth"
)

type ping struct{}

// call runs interceptor around a handler that records the context it saw.
func call(t *testing.T, interceptor connect.UnaryInterceptorFunc, procedure, authorization string) (context.Context, error) {
	t.Helper()

	var seen context.Context
	next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen = ctx
		return connect.NewResponse(&ping{}), nil
	})

	req := &routedRequest{Request: connect.NewRequest(&ping{}), procedure: procedure}
	if authorization != "" {
		req.Header().Set("Authorization", authorization)
	}
	_, err := interceptor(next)(context.Background(), req)
	return seen, err
}

// routedRequest reports a procedure the way a request routed by a handler does.
type routedRequest struct {
	*connect.Request[ping]
	procedure string
}

func (r *routedRequest) Spec() connect.Spec {
	return connect.Spec{Procedure: r.procedure}
}

func TestRequireSession(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	token, err := tokens.Generate("sess-1", "T4")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	interceptor := RequireSession(tokens, "/svc/Public")

	t.Run("puts session and table in the context", func(t *testing.T) {
		ctx, err := call(t, interceptor, "/svc/Private", "Bearer "+token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if GetSessionID(ctx) != "sess-1" || GetTableID(ctx) != "T4" {
			t.Errorf("context has session %q table %q", GetSessionID(ctx), GetTableID(ctx))
		}
	})

	t.Run("public procedures need no token", func(t *testing.T) {
		ctx, err := call(t, interceptor, "/svc/Public", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if GetSessionID(ctx) != "" {
			t.Errorf("public call got session %q", GetSessionID(ctx))
		}
	})

	for name, header := range map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic " + token,
		"empty token":    "Bearer ",
		"garbage token":  "Bearer not-a-jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := call(t, interceptor, "/svc/Private", header)
			if connect.CodeOf(err) != connect.CodeUnauthenticated {
				t.Errorf("code = %v, want Unauthenticated", connect.CodeOf(err))
			}
		})
	}
}

func TestRequireStaff(t *testing.T) {
	interceptor := RequireStaff(auth.NewStaffKey("kitchen-door-1234"))

	if _, err := call(t, interceptor, "/svc/Admin", "Bearer kitchen-door-1234"); err != nil {
		t.Errorf("staff key rejected: %v", err)
	}
	if _, err := call(t, interceptor, "/svc/Admin", ""); connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("missing key: code = %v, want Unauthenticated", connect.CodeOf(err))
	}
	if _, err := call(t, interceptor, "/svc/Admin", "Bearer guess"); connect.CodeOf(err) != connect.CodePermissionDenied {
		t.Errorf("wrong key: code = %v, want PermissionDenied", connect.CodeOf(err))
	}
}
