package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
)

func reviewFixture(t *testing.T) (*ReviewService, *Product, *user.User) {
	t.Helper()
	db := testDB(t)
	products := NewService(db, nil, &config.Config{})
	p := mustCreateProduct(t, products, &CreateRequest{Name: "Martillo", Price: price("9.90")})

	u := user.User{FirstName: "Ana", Email: "ana@example.com"}
	require.NoError(t, db.Create(&u).Error)

	return NewReviewService(db, &config.Config{}), p, &u
}

func TestCreateReviewValidatesRating(t *testing.T) {
	s, p, u := reviewFixture(t)

	r, err := s.CreateReview(&ReviewCreateRequest{
		ProductID: p.ID, UserID: u.ID, Rating: 5, Comment: "Excelente",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating)
	require.NotNil(t, r.User)
	assert.Equal(t, "ana@example.com", r.User.Email)

	_, err = s.CreateReview(&ReviewCreateRequest{ProductID: p.ID, UserID: u.ID, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = s.CreateReview(&ReviewCreateRequest{ProductID: p.ID, UserID: u.ID, Rating: -1})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestUpdateReviewValidatesRating(t *testing.T) {
	s, p, u := reviewFixture(t)

	r, err := s.CreateReview(&ReviewCreateRequest{ProductID: p.ID, UserID: u.ID, Rating: 3})
	require.NoError(t, err)

	bad := 9
	_, err = s.UpdateReview(r.ID, &ReviewUpdateRequest{Rating: &bad})
	assert.ErrorIs(t, err, ErrInvalidRating)

	good := 4
	comment := "Mejor de lo esperado"
	updated, err := s.UpdateReview(r.ID, &ReviewUpdateRequest{Rating: &good, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Mejor de lo esperado", updated.Comment)
}

func TestGetReviewsByProduct(t *testing.T) {
	s, p, u := reviewFixture(t)

	_, err := s.CreateReview(&ReviewCreateRequest{ProductID: p.ID, UserID: u.ID, Rating: 4})
	require.NoError(t, err)

	reviews, err := s.GetReviewsByProduct(p.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	_, err = s.GetReviewsByProduct(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReview(t *testing.T) {
	s, p, u := reviewFixture(t)

	r, err := s.CreateReview(&ReviewCreateRequest{ProductID: p.ID, UserID: u.ID, Rating: 2})
	require.NoError(t, err)

	require.NoError(t, s.DeleteReview(r.ID))
	assert.ErrorIs(t, s.DeleteReview(r.ID), ErrReviewNotFound)
}
