package albums

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	invalidValueMsg = "Invalid value"
	locationBody    = "body"
)

// CreateAlbumInput 创建相册的请求体，不包含 user_id
type CreateAlbumInput struct {
	Title   string `json:"title" validate:"required,min=3"`
	URL     string `json:"url" validate:"required,url"`
	Comment string `json:"comment" validate:"required,min=3"`
}

func (in *CreateAlbumInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	in.Comment = strings.TrimSpace(in.Comment)
}

func (in *CreateAlbumInput) values() map[string]any {
	return map[string]any{"title": in.Title, "url": in.URL, "comment": in.Comment}
}

// UpdateAlbumInput 更新相册的请求体，未提供的字段保持不变
type UpdateAlbumInput struct {
	Title   *string `json:"title" validate:"omitnil,min=3"`
	URL     *string `json:"url" validate:"omitnil,url"`
	Comment *string `json:"comment" validate:"omitnil,min=3"`

	// typeErrors 类型不匹配的字段，归属检查通过后才报告
	typeErrors []FieldError
}

// UnmarshalJSON 逐字段解码，类型不匹配不会让整个请求体失败
func (in *UpdateAlbumInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*in = UpdateAlbumInput{}
	fields := []struct {
		name string
		dst  **string
	}{
		{"title", &in.Title},
		{"url", &in.URL},
		{"comment", &in.Comment},
	}
	for _, f := range fields {
		msg, ok := raw[f.name]
		if !ok {
			continue
		}
		var value *string
		if err := json.Unmarshal(msg, &value); err != nil {
			var got any
			_ = json.Unmarshal(msg, &got)
			in.typeErrors = append(in.typeErrors, FieldError{
				Value:    got,
				Msg:      invalidValueMsg,
				Param:    f.name,
				Location: locationBody,
			})
			continue
		}
		*f.dst = value
	}
	return nil
}

func (in *UpdateAlbumInput) normalize() {
	for _, p := range []*string{in.Title, in.URL, in.Comment} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

func (in *UpdateAlbumInput) values() map[string]any {
	v := make(map[string]any)
	if in.Title != nil {
		v["title"] = *in.Title
	}
	if in.URL != nil {
		v["url"] = *in.URL
	}
	if in.Comment != nil {
		v["comment"] = *in.Comment
	}
	return v
}

// PhotoIDList 照片 ID 列表，JSON 中既可以是单个数字也可以是数组
type PhotoIDList []uint

func (l *PhotoIDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var ids []uint
		if err := json.Unmarshal(data, &ids); err != nil {
			return err
		}
		*l = ids
		return nil
	}

	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*l = PhotoIDList{id}
	return nil
}

// AttachPhotosInput 添加照片的请求体
type AttachPhotosInput struct {
	PhotoIDs PhotoIDList `json:"photo_id" validate:"required,min=1,dive,gt=0"`
}

func (in *AttachPhotosInput) values() map[string]any {
	v := map[string]any{}
	if in.PhotoIDs != nil {
		v["photo_id"] = []uint(in.PhotoIDs)
	}
	for i, id := range in.PhotoIDs {
		v[fmt.Sprintf("photo_id[%d]", i)] = id
	}
	return v
}

// unique 去重并保持顺序
func (in *AttachPhotosInput) unique() []uint {
	seen := make(map[uint]struct{}, len(in.PhotoIDs))
	ids := make([]uint, 0, len(in.PhotoIDs))
	for _, id := range in.PhotoIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// newValidator 创建使用 json 字段名的校验器
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput 校验 input，失败时返回字段错误列表
func validateInput(v *validator.Validate, input any, values map[string]any) []FieldError {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Msg: invalidValueMsg, Location: locationBody}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		param := fieldPath(fe)
		fields = append(fields, FieldError{
			Value:    values[param],
			Msg:      invalidValueMsg,
			Param:    param,
			Location: locationBody,
		})
	}
	return fields
}

// fieldPath 去掉顶层结构体名，例如 AttachPhotosInput.photo_id[1] -> photo_id[1]
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
