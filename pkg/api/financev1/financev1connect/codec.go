// Package financev1connect wires the finance.v1 services to Connect RPC.
//
// Handlers and clients exchange JSON messages (content type application/json
// for unary Connect calls). Every procedure is unary.
package financev1connect

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// CodecName is the Connect codec name used by all finance.v1 services.
const CodecName = "json"

// Codec encodes finance.v1 messages as JSON.
type Codec struct{}

var _ connect.Codec = Codec{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("invalid JSON message: %w", err)
	}
	return nil
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}

// route serves a service's procedures under its path prefix.
func route(prefix string, procedures map[string]http.Handler) (string, http.Handler) {
	return prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := procedures[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

func trimBase(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}

func unimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, fmt.Errorf("%s is not implemented", procedure))
}
