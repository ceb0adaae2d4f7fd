package albums

import (
	"errors"
	"fmt"
)

// Kind 服务错误类别，由传输层映射为 HTTP 状态码
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// 响应中使用的固定消息
const (
	MsgAlbumNotFound        = "Album not found"
	MsgAlbumNotOwned        = "Album does not belong to user."
	MsgAlbumOrPhotoNotOwned = "Album or photo does not belong to user."
	MsgPhotoAlreadyExists   = "Photo already exists."
	MsgPhotoNotInAlbum      = "Photo does not exist in album."

	MsgListFailed   = "Exception thrown when attempting to fetch albums."
	MsgGetFailed    = "Exception thrown when attempting to fetch album."
	MsgCreateFailed = "Exception thrown when attempting to add album."
	MsgUpdateFailed = "Exception thrown in database when updating album."
	MsgAttachFailed = "Exception thrown when attempting to attach photo"
	MsgDetachFailed = "Exception thrown when attempting to remove photo from album"
	MsgDeleteFailed = "Exception thrown when attempting to delete album"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Value    any    `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location"`
}

// Error 相册服务返回的错误
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %d invalid field(s)", e.Kind, len(e.Fields))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError 提取 *Error
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind 判断 err 是否为指定类别的服务错误
func IsKind(err error, kind Kind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}

func validationError(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Fields: fields}
}

func forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}
