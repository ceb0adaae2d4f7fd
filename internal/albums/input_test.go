package albums

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoIDList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want PhotoIDList
	}{
		{`{"photo_id":[5,6]}`, PhotoIDList{5, 6}},
		{`{"photo_id":7}`, PhotoIDList{7}},
		{`{"photo_id":[]}`, PhotoIDList{}},
		{`{"photo_id":null}`, nil},
		{`{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var in AttachPhotosInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.want, in.PhotoIDs)
		})
	}
}

func TestPhotoIDList_UnmarshalJSON_Invalid(t *testing.T) {
	for _, body := range []string{`{"photo_id":"5"}`, `{"photo_id":[-1]}`, `{"photo_id":1.5}`} {
		var in AttachPhotosInput
		assert.Error(t, json.Unmarshal([]byte(body), &in), body)
	}
}

func TestUpdateAlbumInput_UnmarshalJSON(t *testing.T) {
	var in UpdateAlbumInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":12345,"url":"https://example.com/a","comment":null}`), &in))

	assert.Nil(t, in.Title)
	require.NotNil(t, in.URL)
	assert.Equal(t, "https://example.com/a", *in.URL)
	assert.Nil(t, in.Comment)
	require.Len(t, in.typeErrors, 1)
	assert.Equal(t, FieldError{Value: float64(12345), Msg: "Invalid value", Param: "title", Location: "body"}, in.typeErrors[0])

	// 非对象仍然整体失败
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &in))
	assert.Error(t, json.Unmarshal([]byte(`"title"`), &in))
}

func TestAttachPhotosInput_Unique(t *testing.T) {
	in := AttachPhotosInput{PhotoIDs: PhotoIDList{3, 1, 3, 2, 1}}
	assert.Equal(t, []uint{3, 1, 2}, in.unique())
}

func TestFieldError_JSON(t *testing.T) {
	data, err := json.Marshal(FieldError{Value: "ab", Msg: "Invalid value", Param: "title", Location: "body"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"ab","msg":"Invalid value","param":"title","location":"body"}`, string(data))

	// 未提交的字段不输出 value
	data, err = json.Marshal(FieldError{Msg: "Invalid JSON body", Location: "body"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"msg":"Invalid JSON body","location":"body"}`, string(data))
}

func TestError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := fmt.Errorf("wrapped: %w", internal(MsgCreateFailed, cause))

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindInternal, e.Kind)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindInternal))
	assert.False(t, IsKind(err, KindForbidden))
	assert.Contains(t, e.Error(), "disk full")

	assert.Equal(t, "forbidden: Album does not belong to user.", forbidden(MsgAlbumNotOwned).Error())
	assert.Equal(t, "validation: 2 invalid field(s)", validationError(make([]FieldError, 2)).Error())
}

func TestContainsAllAndMissing(t *testing.T) {
	assert.True(t, containsAll([]uint{1, 2, 3}, []uint{3, 1}))
	assert.False(t, containsAll([]uint{1, 2}, []uint{2, 4}))
	assert.False(t, containsAll(nil, []uint{1}))
	assert.Equal(t, []uint{4, 5}, missingFrom([]uint{1, 2}, []uint{4, 2, 5}))
	assert.Empty(t, missingFrom([]uint{1}, []uint{1}))
}
