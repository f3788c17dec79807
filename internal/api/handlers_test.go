package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/azkar/internal/api"
	errorvalues "github.com/limbo/azkar/internal/error_values"
	"github.com/limbo/azkar/internal/service"
	"github.com/limbo/azkar/internal/service/mocks"
	"github.com/limbo/azkar/pkg/entity"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type UserServiceMock struct {
	success bool
}

func (usmock *UserServiceMock) ChangeState(success bool) {
	usmock.success = success
}

func (usmock *UserServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) Login(ctx context.Context, name, password string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) GetByName(ctx context.Context, name string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	if usmock.success {
		return nil
	}
	return errors.New("mocked error")
}

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	uid             = uuid.New()
)

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/register", nil)
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogin(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  &jwtServiceStub{},
	})
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/login", nil)
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

type jwtServiceStub struct{}

func (j *jwtServiceStub) GenerateToken(user *entity.User) (string, error) {
	return "stub-token", nil
}

func (j *jwtServiceStub) ParseToken(tokenString string) (*api.JWTClaims, error) {
	return nil, errorvalues.ErrInvalidToken
}

var userID = uuid.New()

func authed(r *http.Request) *http.Request {
	return r.WithContext(api.ContextWithUID(r.Context(), userID))
}

func TestCreateGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGroupsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GroupsService: gService,
	})
	groupID := uuid.New()
	friendID := uuid.New()
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Request      api.CreateGroupRequest
	}{
		{
			Desc:         "named group created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				gService.EXPECT().CreateGroup(gomock.Any(), userID, "test_group").Return(&entity.Group{
					ID:        groupID,
					Name:      "test_group",
					CreatorID: userID,
					UsersIDs:  []uuid.UUID{userID},
				}, nil)
			},
			Request: api.CreateGroupRequest{Name: "test_group"},
		},
		{
			Desc:         "pair group created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				gService.EXPECT().CreatePairGroup(gomock.Any(), userID, friendID).Return(&entity.Group{
					ID:        groupID,
					CreatorID: userID,
					UsersIDs:  []uuid.UUID{userID, friendID},
				}, nil)
			},
			Request: api.CreateGroupRequest{FriendID: friendID.String()},
		},
		{
			Desc:         "empty name",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				gService.EXPECT().CreateGroup(gomock.Any(), userID, "").Return(nil, errorvalues.ErrEmptyGroupName)
			},
			Request: api.CreateGroupRequest{},
		},
		{
			Desc:         "unexist friend",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				gService.EXPECT().CreatePairGroup(gomock.Any(), userID, friendID).Return(nil, errorvalues.ErrUserNotFound)
			},
			Request: api.CreateGroupRequest{FriendID: friendID.String()},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			body, err := sonic.ConfigDefault.Marshal(tc.Request)
			if err != nil {
				t.Fatal(err)
			}
			rr := httptest.NewRecorder()
			r := authed(httptest.NewRequest(http.MethodPost, "/groups", bytes.NewReader(body)))
			serv.CreateGroup(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestJoinGroupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGroupsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GroupsService: gService,
	})
	groupID := uuid.New()
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "joined",
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				gService.EXPECT().JoinGroup(gomock.Any(), groupID, userID).Return(nil)
			},
		},
		{
			Desc:         "unexist group",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				gService.EXPECT().JoinGroup(gomock.Any(), groupID, userID).Return(errorvalues.ErrGroupNotFound)
			},
		},
		{
			Desc:         "already a member",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				gService.EXPECT().JoinGroup(gomock.Any(), groupID, userID).Return(errorvalues.ErrAlreadyMember)
			},
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				gService.EXPECT().JoinGroup(gomock.Any(), groupID, userID).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := authed(httptest.NewRequest(http.MethodPost, "/groups/"+groupID.String()+"/join", nil))
			r.SetPathValue("id", groupID.String())
			serv.JoinGroup(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestGetGroupScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGroupsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GroupsService: gService,
	})
	groupID := uuid.New()
	t.Run("scoreboard provided", func(t *testing.T) {
		gService.EXPECT().GetScores(gomock.Any(), groupID, userID).Return([]entity.MemberScore{
			{UserID: userID, TotalScore: 2},
		}, nil)
		rr := httptest.NewRecorder()
		r := authed(httptest.NewRequest(http.MethodGet, "/groups/"+groupID.String()+"/scores", nil))
		r.SetPathValue("id", groupID.String())
		serv.GetGroupScores(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("not a member", func(t *testing.T) {
		gService.EXPECT().GetScores(gomock.Any(), groupID, userID).Return(nil, errorvalues.ErrNotGroupMember)
		rr := httptest.NewRecorder()
		r := authed(httptest.NewRequest(http.MethodGet, "/groups/"+groupID.String()+"/scores", nil))
		r.SetPathValue("id", groupID.String())
		serv.GetGroupScores(rr, r)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/groups/"+groupID.String()+"/scores", nil)
		r.SetPathValue("id", groupID.String())
		serv.GetGroupScores(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}
