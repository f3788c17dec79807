package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/azkar/internal/service"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	groupsService     service.GroupsServiceI
	challengesService service.ChallengesServiceI
	jwtService        JWTServiceI
}

type ServicesList struct {
	UserService       service.UserServiceI
	GroupsService     service.GroupsServiceI
	ChallengesService service.ChallengesServiceI
	JwtService        JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		groupsService:     servicesOptions.GroupsService,
		challengesService: servicesOptions.ChallengesService,
		jwtService:        servicesOptions.JwtService,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Post("/register", s.Register)
	s.mx.Post("/login", s.Login)
	s.mx.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/users/{id}", s.GetUser)
		r.Get("/me/groups", s.GetUserGroups)

		r.Post("/groups", s.CreateGroup)
		r.Post("/groups/{id}/join", s.JoinGroup)
		r.Get("/groups/{id}", s.GetGroup)
		r.Get("/groups/{id}/scores", s.GetGroupScores)
		r.Get("/groups/{id}/challenges", s.GetGroupChallenges)

		r.Post("/challenges/personal", s.AddPersonalChallenge)
		r.Get("/challenges/personal", s.GetPersonalChallenges)
		r.Put("/challenges/personal/{id}", s.UpdatePersonalChallenge)
		r.Post("/challenges", s.AddGroupChallenge)
		r.Get("/challenges", s.GetChallenges)
		r.Get("/challenges/{id}", s.GetChallenge)
		r.Put("/challenges/{id}", s.UpdateChallenge)
	})
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}

// Handler exposes the routed mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
