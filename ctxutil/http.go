package ctxutil

import (
	"context"
	"net"
	"net/http"
	"strings"
)

const (
	clientIPKey  = "client_ip"
	userAgentKey = "user_agent"
)

// forwardedHeaders are consulted in order before the socket address.
var forwardedHeaders = []string{"X-Forwarded-For", "X-Real-IP", "CF-Connecting-IP"}

// SetClientInfo stores the caller address and user agent of req.
func SetClientInfo(ctx context.Context, req *http.Request) context.Context {
	ctx = SetValue(ctx, clientIPKey, clientIPFromRequest(req))
	return SetValue(ctx, userAgentKey, req.UserAgent())
}

// GetClientIP gets client IP from context.Context
func GetClientIP(ctx context.Context) string {
	if ip, ok := GetValue(ctx, clientIPKey).(string); ok && ip != "" {
		return ip
	}
	if c, ok := GetGinContext(ctx); ok && c.Request != nil {
		return clientIPFromRequest(c.Request)
	}
	return "unknown"
}

// GetUserAgent gets user agent from context.Context
func GetUserAgent(ctx context.Context) string {
	if ua, ok := GetValue(ctx, userAgentKey).(string); ok {
		return ua
	}
	return ""
}

// clientIPFromRequest prefers the first public address from proxy headers.
func clientIPFromRequest(req *http.Request) string {
	for _, header := range forwardedHeaders {
		value := req.Header.Get(header)
		if value == "" {
			continue
		}
		ip := strings.TrimSpace(strings.Split(value, ",")[0])
		if ip != "" && !isPrivateIP(ip) {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(req.RemoteAddr); err == nil {
		return host
	}
	if req.RemoteAddr == "" {
		return "unknown"
	}
	return req.RemoteAddr
}

// isPrivateIP checks if IP is private, loopback or unparsable
func isPrivateIP(ipStr string) bool {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return true
	}
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast()
}
