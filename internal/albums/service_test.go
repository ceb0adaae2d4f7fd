package albums

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/anoixa/photo-album/cache"
	"github.com/anoixa/photo-album/cache/memory"
	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/models"
	albumsrepo "github.com/anoixa/photo-album/database/repo/albums"
	photosrepo "github.com/anoixa/photo-album/database/repo/photos"
	"github.com/anoixa/photo-album/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	svc      *Service
	provider *database.GormProvider
	db       *gorm.DB
	ctx      context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	provider := testutils.SetupProvider(t)
	mem, err := memory.NewMemory(memory.Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64})
	require.NoError(t, err)
	t.Cleanup(func() { _ = mem.Close() })

	svc := NewService(
		provider,
		albumsrepo.NewRepository(provider),
		photosrepo.NewRepository(provider),
		cache.NewHelper(mem, cache.HelperConfig{AlbumListTTL: time.Minute}),
	)
	return &fixture{svc: svc, provider: provider, db: provider.DB(), ctx: context.Background()}
}

func strPtr(s string) *string { return &s }

func requireKind(t *testing.T, err error, kind Kind, msg string) *Error {
	t.Helper()
	require.Error(t, err)
	e, ok := AsError(err)
	require.True(t, ok, "expected *albums.Error, got %T: %v", err, err)
	assert.Equal(t, kind, e.Kind)
	if msg != "" {
		assert.Equal(t, msg, e.Message)
	}
	return e
}

func (f *fixture) reloadAlbum(t *testing.T, id uint) *models.Album {
	t.Helper()
	var album models.Album
	require.NoError(t, f.db.First(&album, id).Error)
	return &album
}

// --- ListForUser ---

func TestService_ListForUser(t *testing.T) {
	f := newFixture(t)
	u1 := testutils.CreateUser(t, f.db, "u1")
	u2 := testutils.CreateUser(t, f.db, "u2")
	a1 := testutils.CreateAlbum(t, f.db, u1.ID, "first")
	testutils.CreateAlbum(t, f.db, u2.ID, "foreign")
	a2 := testutils.CreateAlbum(t, f.db, u1.ID, "second")
	photo := testutils.CreatePhoto(t, f.db, u1.ID, "p")
	testutils.AttachPhoto(t, f.db, a1.ID, photo.ID)

	albums, err := f.svc.ListForUser(f.ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, a1.ID, albums[0].ID)
	assert.Equal(t, a2.ID, albums[1].ID)
	for _, a := range albums {
		assert.Empty(t, a.Photos)
		assert.Equal(t, u1.ID, a.UserID)
	}

	empty, err := f.svc.ListForUser(f.ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestService_ListForUser_CacheInvalidatedOnWrite(t *testing.T) {
	f := newFixture(t)
	u1 := testutils.CreateUser(t, f.db, "u1")

	albums, err := f.svc.ListForUser(f.ctx, u1.ID)
	require.NoError(t, err)
	assert.Len(t, albums, 0)

	created, err := f.svc.Create(f.ctx, u1.ID, CreateAlbumInput{Title: "Trip", URL: "https://example.com/trip", Comment: "summer"})
	require.NoError(t, err)

	albums, err = f.svc.ListForUser(f.ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Trip", albums[0].Title)

	_, err = f.svc.Update(f.ctx, u1.ID, created.ID, UpdateAlbumInput{Title: strPtr("Road Trip")})
	require.NoError(t, err)
	albums, err = f.svc.ListForUser(f.ctx, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Road Trip", albums[0].Title)

	require.NoError(t, f.svc.Destroy(f.ctx, u1.ID, created.ID))
	albums, err = f.svc.ListForUser(f.ctx, u1.ID)
	require.NoError(t, err)
	assert.Len(t, albums, 0)
}

func TestService_ListForUser_ListReadBeforeWriteIsNotServed(t *testing.T) {
	f := newFixture(t)
	u1 := testutils.CreateUser(t, f.db, "u1")

	// 模拟并发读取：取得版本并查询后，写入方提交
	version, err := f.svc.cache.AlbumListVersion(f.ctx, u1.ID)
	require.NoError(t, err)
	stale, err := f.svc.listFromStore(f.ctx, u1.ID)
	require.NoError(t, err)

	_, err = f.svc.Create(f.ctx, u1.ID, CreateAlbumInput{Title: "Trip", URL: "https://example.com/trip", Comment: "summer"})
	require.NoError(t, err)

	// 读取方随后写回旧列表
	require.NoError(t, f.svc.cache.CacheAlbumList(f.ctx, u1.ID, version, stale))

	albums, err := f.svc.ListForUser(f.ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Trip", albums[0].Title)
}

// --- GetOne ---

func TestService_GetOne_OwnerSeesPhotos(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	other := testutils.CreateUser(t, f.db, "other")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "trip")
	p1 := testutils.CreatePhoto(t, f.db, owner.ID, "one")
	p2 := testutils.CreatePhoto(t, f.db, owner.ID, "two")
	testutils.AttachPhoto(t, f.db, album.ID, p1.ID)
	testutils.AttachPhoto(t, f.db, album.ID, p2.ID)

	got, err := f.svc.GetOne(f.ctx, owner.ID, album.ID)
	require.NoError(t, err)
	assert.Equal(t, album.ID, got.ID)
	require.Len(t, got.Photos, 2)
	assert.Equal(t, p1.ID, got.Photos[0].ID)

	_, err = f.svc.GetOne(f.ctx, other.ID, album.ID)
	requireKind(t, err, KindNotFound, MsgAlbumNotFound)

	_, err = f.svc.GetOne(f.ctx, owner.ID, 4242)
	requireKind(t, err, KindNotFound, MsgAlbumNotFound)
}

func TestService_GetOne_EmptyAlbumHasEmptyPhotos(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "empty")

	got, err := f.svc.GetOne(f.ctx, owner.ID, album.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Photos)
	assert.Len(t, got.Photos, 0)
}

// --- Create ---

func TestService_Create_IgnoresClientUserID(t *testing.T) {
	f := newFixture(t)
	requester := testutils.CreateUser(t, f.db, "requester")
	victim := testutils.CreateUser(t, f.db, "victim")

	body := `{"title":"Trip","url":"https://example.com/trip","comment":"summer","user_id":` +
		jsonNumber(victim.ID) + `}`
	var in CreateAlbumInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	album, err := f.svc.Create(f.ctx, requester.ID, in)
	require.NoError(t, err)
	assert.NotZero(t, album.ID)
	assert.Equal(t, requester.ID, album.UserID)
	assert.Equal(t, requester.ID, f.reloadAlbum(t, album.ID).UserID)
}

func TestService_Create_TrimsInput(t *testing.T) {
	f := newFixture(t)
	u := testutils.CreateUser(t, f.db, "u")

	album, err := f.svc.Create(f.ctx, u.ID, CreateAlbumInput{
		Title:   "  Trip  ",
		URL:     " https://example.com/trip ",
		Comment: " summer ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Trip", album.Title)
	assert.Equal(t, "https://example.com/trip", album.URL)
	assert.Equal(t, "summer", album.Comment)
}

func TestService_Create_Validation(t *testing.T) {
	f := newFixture(t)
	u := testutils.CreateUser(t, f.db, "u")

	tests := []struct {
		name   string
		in     CreateAlbumInput
		params []string
	}{
		{"all missing", CreateAlbumInput{}, []string{"title", "url", "comment"}},
		{"short title", CreateAlbumInput{Title: "ab", URL: "https://example.com", Comment: "okay"}, []string{"title"}},
		{"title only spaces", CreateAlbumInput{Title: "     ", URL: "https://example.com", Comment: "okay"}, []string{"title"}},
		{"bad url", CreateAlbumInput{Title: "Trip", URL: "not a url", Comment: "okay"}, []string{"url"}},
		{"short comment", CreateAlbumInput{Title: "Trip", URL: "https://example.com", Comment: "no"}, []string{"comment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(f.ctx, u.ID, tt.in)
			e := requireKind(t, err, KindValidation, "")
			require.Len(t, e.Fields, len(tt.params))
			for i, p := range tt.params {
				assert.Equal(t, p, e.Fields[i].Param)
				assert.Equal(t, "Invalid value", e.Fields[i].Msg)
				assert.Equal(t, "body", e.Fields[i].Location)
			}
		})
	}

	var count int64
	f.db.Model(&models.Album{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// --- Update ---

func TestService_Update_NotOwnerIsForbiddenAndUnchanged(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	other := testutils.CreateUser(t, f.db, "other")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "original")

	_, err := f.svc.Update(f.ctx, other.ID, album.ID, UpdateAlbumInput{Title: strPtr("hijacked")})
	requireKind(t, err, KindForbidden, MsgAlbumNotOwned)

	// 归属检查先于字段校验
	_, err = f.svc.Update(f.ctx, other.ID, album.ID, UpdateAlbumInput{Title: strPtr("x")})
	requireKind(t, err, KindForbidden, MsgAlbumNotOwned)

	_, err = f.svc.Update(f.ctx, other.ID, 4242, UpdateAlbumInput{})
	requireKind(t, err, KindForbidden, MsgAlbumNotOwned)

	reloaded := f.reloadAlbum(t, album.ID)
	assert.Equal(t, "original", reloaded.Title)
	assert.Equal(t, owner.ID, reloaded.UserID)
}

func TestService_Update_PartialFields(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "original")

	updated, err := f.svc.Update(f.ctx, owner.ID, album.ID, UpdateAlbumInput{Comment: strPtr("  new comment  ")})
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Title)
	assert.Equal(t, album.URL, updated.URL)
	assert.Equal(t, "new comment", updated.Comment)
	assert.Equal(t, owner.ID, updated.UserID)

	// 空请求体也返回当前记录
	same, err := f.svc.Update(f.ctx, owner.ID, album.ID, UpdateAlbumInput{})
	require.NoError(t, err)
	assert.Equal(t, "new comment", same.Comment)
}

func TestService_Update_Validation(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "original")

	_, err := f.svc.Update(f.ctx, owner.ID, album.ID, UpdateAlbumInput{
		Title: strPtr("ok title"),
		URL:   strPtr("nope"),
	})
	e := requireKind(t, err, KindValidation, "")
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "url", e.Fields[0].Param)
	assert.Equal(t, "nope", e.Fields[0].Value)

	_, err = f.svc.Update(f.ctx, owner.ID, album.ID, UpdateAlbumInput{Title: strPtr("")})
	e = requireKind(t, err, KindValidation, "")
	assert.Equal(t, "title", e.Fields[0].Param)

	// 校验失败不写入任何字段
	assert.Equal(t, "original", f.reloadAlbum(t, album.ID).Title)
}

func TestService_Update_TypeErrorsReportedAfterOwnership(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	other := testutils.CreateUser(t, f.db, "other")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "original")

	var in UpdateAlbumInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":12345,"url":"nope"}`), &in))

	_, err := f.svc.Update(f.ctx, other.ID, album.ID, in)
	requireKind(t, err, KindForbidden, MsgAlbumNotOwned)

	_, err = f.svc.Update(f.ctx, owner.ID, album.ID, in)
	e := requireKind(t, err, KindValidation, "")
	require.Len(t, e.Fields, 2)
	assert.Equal(t, "title", e.Fields[0].Param)
	assert.Equal(t, "url", e.Fields[1].Param)
	assert.Equal(t, "original", f.reloadAlbum(t, album.ID).Title)
}

// --- AttachPhotos ---

func TestService_AttachPhotos_ExactCurrentSetIsRejected(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "trip")
	p1 := testutils.CreatePhoto(t, f.db, owner.ID, "one")
	p2 := testutils.CreatePhoto(t, f.db, owner.ID, "two")
	testutils.AttachPhoto(t, f.db, album.ID, p1.ID)
	testutils.AttachPhoto(t, f.db, album.ID, p2.ID)

	err := f.svc.AttachPhotos(f.ctx, owner.ID, album.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{p1.ID, p2.ID}})
	requireKind(t, err, KindConflict, MsgPhotoAlreadyExists)
	assert.Equal(t, int64(2), testutils.CountAlbumPhotos(t, f.db, album.ID))
}

func TestService_AttachPhotos_ForeignPhotoForbidden(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	other := testutils.CreateUser(t, f.db, "other")
	ownAlbum := testutils.CreateAlbum(t, f.db, owner.ID, "mine")
	otherAlbum := testutils.CreateAlbum(t, f.db, other.ID, "theirs")
	mine := testutils.CreatePhoto(t, f.db, owner.ID, "mine")
	theirs := testutils.CreatePhoto(t, f.db, other.ID, "theirs")

	// 自己的相册，他人的照片
	err := f.svc.AttachPhotos(f.ctx, owner.ID, ownAlbum.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{mine.ID, theirs.ID}})
	requireKind(t, err, KindForbidden, MsgAlbumOrPhotoNotOwned)

	// 他人的相册，他人的照片
	err = f.svc.AttachPhotos(f.ctx, owner.ID, otherAlbum.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{theirs.ID}})
	requireKind(t, err, KindForbidden, MsgAlbumOrPhotoNotOwned)

	// 他人的相册，自己的照片
	err = f.svc.AttachPhotos(f.ctx, owner.ID, otherAlbum.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{mine.ID}})
	requireKind(t, err, KindForbidden, MsgAlbumOrPhotoNotOwned)

	// 不存在的照片
	err = f.svc.AttachPhotos(f.ctx, owner.ID, ownAlbum.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{9999}})
	requireKind(t, err, KindForbidden, MsgAlbumOrPhotoNotOwned)

	// 不存在的相册
	err = f.svc.AttachPhotos(f.ctx, owner.ID, 4242, AttachPhotosInput{PhotoIDs: PhotoIDList{mine.ID}})
	requireKind(t, err, KindForbidden, MsgAlbumOrPhotoNotOwned)

	assert.Equal(t, int64(0), testutils.CountAlbumPhotos(t, f.db, ownAlbum.ID))
	assert.Equal(t, int64(0), testutils.CountAlbumPhotos(t, f.db, otherAlbum.ID))
}

func TestService_AttachPhotos_DuplicateCheckedBeforeOwnership(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	intruder := testutils.CreateUser(t, f.db, "intruder")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "trip")
	photo := testutils.CreatePhoto(t, f.db, owner.ID, "one")
	testutils.AttachPhoto(t, f.db, album.ID, photo.ID)

	err := f.svc.AttachPhotos(f.ctx, intruder.ID, album.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{photo.ID}})
	requireKind(t, err, KindConflict, MsgPhotoAlreadyExists)
}

func TestService_AttachPhotos_PartialOverlapAddsMissing(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "trip")
	p1 := testutils.CreatePhoto(t, f.db, owner.ID, "one")
	p2 := testutils.CreatePhoto(t, f.db, owner.ID, "two")
	testutils.AttachPhoto(t, f.db, album.ID, p1.ID)

	err := f.svc.AttachPhotos(f.ctx, owner.ID, album.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{p1.ID, p2.ID, p2.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), testutils.CountAlbumPhotos(t, f.db, album.ID))
}

func TestService_AttachPhotos_PhotoFromOwnAlbumCounts(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	source := testutils.CreateAlbum(t, f.db, owner.ID, "source")
	target := testutils.CreateAlbum(t, f.db, owner.ID, "target")
	// 没有上传者，但在自己的相册中
	photo := testutils.CreatePhoto(t, f.db, 0, "shared")
	testutils.AttachPhoto(t, f.db, source.ID, photo.ID)

	require.NoError(t, f.svc.AttachPhotos(f.ctx, owner.ID, target.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{photo.ID}}))
	assert.Equal(t, int64(1), testutils.CountAlbumPhotos(t, f.db, target.ID))
}

func TestService_AttachPhotos_Validation(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "trip")

	err := f.svc.AttachPhotos(f.ctx, owner.ID, album.ID, AttachPhotosInput{})
	e := requireKind(t, err, KindValidation, "")
	assert.Equal(t, "photo_id", e.Fields[0].Param)
	assert.Nil(t, e.Fields[0].Value)

	err = f.svc.AttachPhotos(f.ctx, owner.ID, album.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{}})
	e = requireKind(t, err, KindValidation, "")
	assert.Equal(t, "photo_id", e.Fields[0].Param)

	err = f.svc.AttachPhotos(f.ctx, owner.ID, album.ID, AttachPhotosInput{PhotoIDs: PhotoIDList{3, 0}})
	e = requireKind(t, err, KindValidation, "")
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "photo_id[1]", e.Fields[0].Param)
	assert.Equal(t, uint(0), e.Fields[0].Value)
}

// --- DetachPhoto ---

func TestService_DetachPhoto_MissingPairIsNotFoundEvenForForeignAlbum(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	other := testutils.CreateUser(t, f.db, "other")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "trip")
	photo := testutils.CreatePhoto(t, f.db, owner.ID, "one")

	err := f.svc.DetachPhoto(f.ctx, other.ID, album.ID, photo.ID)
	requireKind(t, err, KindNotFound, MsgPhotoNotInAlbum)

	err = f.svc.DetachPhoto(f.ctx, owner.ID, album.ID, photo.ID)
	requireKind(t, err, KindNotFound, MsgPhotoNotInAlbum)

	err = f.svc.DetachPhoto(f.ctx, owner.ID, 4242, photo.ID)
	requireKind(t, err, KindNotFound, MsgPhotoNotInAlbum)
}

func TestService_DetachPhoto_ForeignAlbumForbidden(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	other := testutils.CreateUser(t, f.db, "other")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "trip")
	photo := testutils.CreatePhoto(t, f.db, owner.ID, "one")
	testutils.AttachPhoto(t, f.db, album.ID, photo.ID)

	err := f.svc.DetachPhoto(f.ctx, other.ID, album.ID, photo.ID)
	requireKind(t, err, KindForbidden, MsgAlbumNotOwned)
	assert.Equal(t, int64(1), testutils.CountAlbumPhotos(t, f.db, album.ID))

	require.NoError(t, f.svc.DetachPhoto(f.ctx, owner.ID, album.ID, photo.ID))
	assert.Equal(t, int64(0), testutils.CountAlbumPhotos(t, f.db, album.ID))
}

// --- Destroy ---

func TestService_Destroy(t *testing.T) {
	f := newFixture(t)
	owner := testutils.CreateUser(t, f.db, "owner")
	other := testutils.CreateUser(t, f.db, "other")
	album := testutils.CreateAlbum(t, f.db, owner.ID, "trip")
	p1 := testutils.CreatePhoto(t, f.db, owner.ID, "one")
	p2 := testutils.CreatePhoto(t, f.db, owner.ID, "two")
	testutils.AttachPhoto(t, f.db, album.ID, p1.ID)
	testutils.AttachPhoto(t, f.db, album.ID, p2.ID)

	err := f.svc.Destroy(f.ctx, other.ID, album.ID)
	requireKind(t, err, KindForbidden, MsgAlbumNotOwned)
	assert.Equal(t, int64(2), testutils.CountAlbumPhotos(t, f.db, album.ID))

	err = f.svc.Destroy(f.ctx, owner.ID, 4242)
	requireKind(t, err, KindForbidden, MsgAlbumNotOwned)

	require.NoError(t, f.svc.Destroy(f.ctx, owner.ID, album.ID))
	assert.Equal(t, int64(0), testutils.CountAlbumPhotos(t, f.db, album.ID))

	var count int64
	f.db.Model(&models.Album{}).Where("id = ?", album.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// 照片本身保留
	f.db.Model(&models.Photo{}).Count(&count)
	assert.Equal(t, int64(2), count)

	_, err = f.svc.GetOne(f.ctx, owner.ID, album.ID)
	requireKind(t, err, KindNotFound, MsgAlbumNotFound)
}

// --- 完整流程 ---

func TestService_Scenario(t *testing.T) {
	f := newFixture(t)
	u1 := testutils.CreateUser(t, f.db, "u1")
	p5 := testutils.CreatePhoto(t, f.db, u1.ID, "five")
	p6 := testutils.CreatePhoto(t, f.db, u1.ID, "six")

	album, err := f.svc.Create(f.ctx, u1.ID, CreateAlbumInput{Title: "Trip", URL: "https://example.com/trip", Comment: "holiday"})
	require.NoError(t, err)

	ids := PhotoIDList{p5.ID, p6.ID}
	require.NoError(t, f.svc.AttachPhotos(f.ctx, u1.ID, album.ID, AttachPhotosInput{PhotoIDs: ids}))

	got, err := f.svc.GetOne(f.ctx, u1.ID, album.ID)
	require.NoError(t, err)
	require.Len(t, got.Photos, 2)
	assert.Equal(t, p5.ID, got.Photos[0].ID)
	assert.Equal(t, p6.ID, got.Photos[1].ID)

	err = f.svc.AttachPhotos(f.ctx, u1.ID, album.ID, AttachPhotosInput{PhotoIDs: ids})
	requireKind(t, err, KindConflict, MsgPhotoAlreadyExists)

	require.NoError(t, f.svc.DetachPhoto(f.ctx, u1.ID, album.ID, p5.ID))

	err = f.svc.DetachPhoto(f.ctx, u1.ID, album.ID, p5.ID)
	requireKind(t, err, KindNotFound, MsgPhotoNotInAlbum)

	assert.Equal(t, int64(1), testutils.CountAlbumPhotos(t, f.db, album.ID))
}

func jsonNumber(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
