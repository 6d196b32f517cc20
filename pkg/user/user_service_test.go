package user

import (
	"GreenBite-Backend/domain"
	"GreenBite-Backend/entities"
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubJWT struct {
	verifyClaims gojwt.MapClaims
}

func (s *stubJWT) GenerateTokenUser(userId string, role string) string {
	return "user-token-" + userId
}

func (s *stubJWT) ValidateTokenUser(token string) (*gojwt.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (s *stubJWT) GetUserIDByToken(token string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func (s *stubJWT) GenerateTokenVerifyEmail(data map[string]any, duration time.Duration) (string, error) {
	return "verify-token", nil
}

func (s *stubJWT) ValidateTokenVerifyEmail(token string) (gojwt.MapClaims, error) {
	if token == "verify-token" && s.verifyClaims != nil {
		return s.verifyClaims, nil
	}
	return gojwt.MapClaims{}, domain.ErrTokenInvalid
}

type stubS3 struct {
	uploaded []string
}

func (s *stubS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	key := fmt.Sprintf("%s/%s.png", dir, fileName)
	s.uploaded = append(s.uploaded, key)
	return key, nil
}

func (s *stubS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	s.uploaded = append(s.uploaded, objectKey)
	return objectKey, nil
}

func (s *stubS3) DeleteFile(objectKey string) error { return nil }

func (s *stubS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

func (s *stubS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://cdn.test/")
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func newTestUserService(db *gorm.DB, jwtStub *stubJWT, s3 *stubS3) UserService {
	return NewUserService(NewUserRepository(db), jwtStub, s3)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := newTestDB(t)
	service := newTestUserService(db, &stubJWT{}, &stubS3{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", res.Email)

	var stored entities.User
	require.NoError(t, db.First(&stored, "email = ?", "alex@example.com").Error)

	assert.Equal(t, domain.RoleUser, stored.Role)
	assert.False(t, stored.IsVerified)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	service := newTestUserService(db, &stubJWT{}, &stubS3{})

	req := domain.RegisterRequest{Name: "Alex", Email: "alex@example.com", Password: "supersecret"}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginReturnsToken(t *testing.T) {
	db := newTestDB(t)
	service := newTestUserService(db, &stubJWT{}, &stubS3{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "alex@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-token-"+res.ID, login.Token)
	assert.Equal(t, domain.RoleUser, login.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	service := newTestUserService(db, &stubJWT{}, &stubS3{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "alex@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	service := newTestUserService(db, &stubJWT{}, &stubS3{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyEmailMarksUserVerified(t *testing.T) {
	db := newTestDB(t)
	jwtStub := &stubJWT{}
	service := newTestUserService(db, jwtStub, &stubS3{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	jwtStub.verifyClaims = gojwt.MapClaims{"user_id": res.ID}
	require.NoError(t, service.VerifyEmail(context.Background(), "verify-token"))

	profile, err := service.Me(context.Background(), res.ID)
	require.NoError(t, err)
	assert.True(t, profile.IsVerified)
}

func TestVerifyEmailInvalidToken(t *testing.T) {
	db := newTestDB(t)
	service := newTestUserService(db, &stubJWT{}, &stubS3{})

	err := service.VerifyEmail(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestMeUnknownUser(t *testing.T) {
	db := newTestDB(t)
	service := newTestUserService(db, &stubJWT{}, &stubS3{})

	_, err := service.Me(context.Background(), "b2f6c1de-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfilePictureSetsPublicLink(t *testing.T) {
	db := newTestDB(t)
	s3 := &stubS3{}
	service := newTestUserService(db, &stubJWT{}, s3)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	req := domain.UpdateProfilePictureRequest{Picture: &multipart.FileHeader{Filename: "avatar.png"}}
	require.NoError(t, service.UpdateProfilePicture(context.Background(), req, res.ID))

	profile, err := service.Me(context.Background(), res.ID)
	require.NoError(t, err)

	expectedKey := fmt.Sprintf("profiles/profile-%s.png", res.ID)
	assert.Equal(t, "https://cdn.test/"+expectedKey, profile.ProfilePicture)
	assert.Equal(t, []string{expectedKey}, s3.uploaded)

	// second upload reuses the existing object key
	require.NoError(t, service.UpdateProfilePicture(context.Background(), req, res.ID))
	assert.Equal(t, []string{expectedKey, expectedKey}, s3.uploaded)
}
