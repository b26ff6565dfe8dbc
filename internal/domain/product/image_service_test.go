package product

import (
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/hardware-store-backend/internal/config"
)

// fakeStore stands in for the filesystem.
type fakeStore struct {
	saved   int
	deleted []string
}

func (f *fakeStore) Save(_ *multipart.FileHeader, productID uint) (string, error) {
	f.saved++
	return fmt.Sprintf("/uploads/producto_%d_fake%d.jpg", productID, f.saved), nil
}

func (f *fakeStore) Delete(publicURL string) error {
	f.deleted = append(f.deleted, publicURL)
	return nil
}

func imageFixture(t *testing.T) (*ImageService, *fakeStore, *Product) {
	t.Helper()
	db := testDB(t)
	store := &fakeStore{}
	products := NewService(db, nil, &config.Config{})
	p := mustCreateProduct(t, products, &CreateRequest{Name: "Martillo", Price: price("9.90")})
	return NewImageService(db, store, nil, &config.Config{}), store, p
}

func TestUploadAssignsNextPosition(t *testing.T) {
	s, _, p := imageFixture(t)

	first, err := s.Upload(p.ID, &multipart.FileHeader{Filename: "a.jpg", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Position)

	second, err := s.Upload(p.ID, &multipart.FileHeader{Filename: "b.jpg", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Position)

	images, err := s.GetImagesByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, first.ID, images[0].ID)
}

func TestUploadUnknownProduct(t *testing.T) {
	s, store, _ := imageFixture(t)

	_, err := s.Upload(99, &multipart.FileHeader{Filename: "a.jpg", Size: 10})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, store.saved)
}

func TestReorder(t *testing.T) {
	s, _, p := imageFixture(t)

	img, err := s.Upload(p.ID, &multipart.FileHeader{Filename: "a.jpg", Size: 10})
	require.NoError(t, err)

	moved, err := s.Reorder(img.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, moved.Position)

	_, err = s.Reorder(img.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = s.Reorder(99, 2)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestDeleteImageRemovesRowAndFile(t *testing.T) {
	s, store, p := imageFixture(t)

	img, err := s.Upload(p.ID, &multipart.FileHeader{Filename: "a.jpg", Size: 10})
	require.NoError(t, err)

	require.NoError(t, s.DeleteImage(img.ID))
	require.Len(t, store.deleted, 1)
	assert.Equal(t, img.URL, store.deleted[0])

	// row already gone on the second attempt
	assert.ErrorIs(t, s.DeleteImage(img.ID), ErrImageNotFound)
}
