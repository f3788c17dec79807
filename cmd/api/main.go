// @title Azkar challenges API
// @description API for the social azkar-challenge app
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/azkar/internal/api"
	"github.com/limbo/azkar/internal/repository"
	"github.com/limbo/azkar/internal/service"
	"github.com/limbo/azkar/pkg/cleanup"
	"github.com/limbo/azkar/pkg/config"
	jwtservice "github.com/limbo/azkar/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	groupsRepo := repository.NewGroupsRepo(&dbCfg)
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	groupsService := service.NewGroupsService(groupsRepo)
	challengesService := service.NewChallengesService(repository.NewChallengesRepo(&dbCfg), groupsRepo)
	serv := api.New(&api.ServicesList{
		UserService:       userService,
		GroupsService:     groupsService,
		ChallengesService: challengesService,
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
