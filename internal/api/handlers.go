package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/azkar/internal/error_values"
	"github.com/limbo/azkar/internal/service"
	"github.com/limbo/azkar/pkg/entity"
	"github.com/limbo/azkar/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type CreateGroupRequest struct {
	Name     string `json:"name"`
	FriendID string `json:"friend_id,omitempty"`
}

type GetUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GetUserGroupsResponse struct {
	Groups []entity.UserGroup `json:"groups"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, CodeDefault, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, CodeUserNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, CodeAuthentication, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get user error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get user error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, CodeUserNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get user error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while getting user", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetUserResponse{
		ID:   user.ID.String(),
		Name: user.Name,
	})
	logger.Info("user provided")
}

func (s *Server) GetUserGroups(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get user groups error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	groups, err := s.groupsService.GetUserGroups(ctx, uid)
	if err != nil {
		logger.Error("get user groups error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while getting groups", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetUserGroupsResponse{Groups: groups})
	logger.Info("user groups provided")
}

func (s *Server) CreateGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	var req CreateGroupRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create group error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	var group *entity.Group
	if req.FriendID != "" {
		friendID, parseErr := uuid.Parse(req.FriendID)
		if parseErr != nil {
			logger.Error("create group error: invalid friend id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid friend id", nil)
			return
		}
		group, err = s.groupsService.CreatePairGroup(ctx, uid, friendID)
	} else {
		group, err = s.groupsService.CreateGroup(ctx, uid, req.Name)
	}
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyGroupName):
			logger.Error("create group error: empty name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, errorCode(err), "group name can't be empty", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create group error: unexist member")
			httputil.WriteErrorResponse(w, http.StatusNotFound, errorCode(err), "member doesn't exist", nil)
		default:
			logger.Error("create group error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while creating group", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, group)
	logger.Info("group created")
}

func (s *Server) JoinGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("join group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	groupID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("join group error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.groupsService.JoinGroup(ctx, groupID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("join group error: unexist group")
			httputil.WriteErrorResponse(w, http.StatusNotFound, errorCode(err), "group doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyMember):
			logger.Error("join group error: already member")
			httputil.WriteErrorResponse(w, http.StatusConflict, errorCode(err), "user is already a member", nil)
		default:
			logger.Error("join group error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while joining group", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("group joined")
}

func (s *Server) GetGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	groupID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get group error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	group, err := s.groupsService.GetGroup(ctx, groupID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("get group error: unexist group")
			httputil.WriteErrorResponse(w, http.StatusNotFound, errorCode(err), "group doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotGroupMember):
			logger.Error("get group error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, errorCode(err), "user is not a member of the group", nil)
		default:
			logger.Error("get group error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while getting group", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, group)
	logger.Info("group provided")
}

func (s *Server) GetGroupScores(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get scores error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	groupID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get scores error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	scores, err := s.groupsService.GetScores(ctx, groupID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNotGroupMember):
			logger.Error("get scores error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, errorCode(err), "user is not a member of the group", nil)
		default:
			logger.Error("get scores error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while getting scores", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"scores": scores})
	logger.Info("scores provided")
}
