package albums

import (
	"github.com/anoixa/photo-album/database/models"
	albumsrepo "github.com/anoixa/photo-album/database/repo/albums"
	photosrepo "github.com/anoixa/photo-album/database/repo/photos"
)

// ownership 归属判断，所有查询都走同一个事务
type ownership struct {
	albums *albumsrepo.Repository
	photos *photosrepo.Repository
}

// album 返回用户拥有的相册并锁定该行，不属于该用户时返回 nil
func (o ownership) album(albumID, userID uint) (*models.Album, error) {
	return o.albums.FindOwned(albumID, userID)
}

// allPhotos 判断 ids 是否全部属于该用户
func (o ownership) allPhotos(userID uint, ids []uint) (bool, error) {
	owned, err := o.photos.OwnedPhotoIDs(userID, ids)
	if err != nil {
		return false, err
	}
	return len(owned) == len(ids), nil
}

// containsAll 判断 want 中的每个元素是否都在 have 中
func containsAll(have, want []uint) bool {
	set := toSet(have)
	for _, id := range want {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

// missingFrom 返回 want 中不在 have 里的元素，保持 want 的顺序
func missingFrom(have, want []uint) []uint {
	set := toSet(have)
	missing := make([]uint, 0, len(want))
	for _, id := range want {
		if _, ok := set[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func toSet(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
