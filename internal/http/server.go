package http

import (
	"net/http"
)

// NewServer builds the operational server. A nil picks handler leaves the
// push endpoint unregistered; pushRateLimit <= 0 disables rate limiting.
func NewServer(db Pinger, picks PickHandler, metricsHandler http.Handler, pushRateLimit int) *Server {
	server := &Server{
		DB:             db,
		Picks:          picks,
		MetricsHandler: metricsHandler,
		PushRateLimit:  pushRateLimit,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	if s.Picks != nil {
		s.Router.Handle("/pubsub/picks", Chain(s.PickPushHandler(), paramsMiddleware, rateLimitMiddleware(s.PushRateLimit)))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
