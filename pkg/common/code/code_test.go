package code

import (
	// 外部依赖
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestWithErrKeepsCode(t *testing.T) {
	inner := errors.New("duplicate key")
	wrapped := CreateDataErr.WithErr(inner)

	assert.ErrorIs(t, wrapped, CreateDataErr)
	assert.ErrorIs(t, wrapped, inner)
	assert.Equal(t, CreateDataErr.Value(), wrapped.Value())
	assert.Contains(t, wrapped.Error(), "duplicate key")

	// 原值不被修改
	assert.NoError(t, CreateDataErr.Unwrap())
}

func TestWithMsg(t *testing.T) {
	c := ParamErr.WithMsgf("field %s missing", "title")
	assert.Equal(t, "field title missing", c.String())
	assert.Equal(t, ParamErr.Value(), c.Value())
	assert.Equal(t, http.StatusBadRequest, c.HTTPStatus())
}

func TestFrom(t *testing.T) {
	assert.Equal(t, Success, From(nil))
	assert.Equal(t, GigNotFound, From(GigNotFound))

	wrapped := fmt.Errorf("repo: %w", LabNotFound)
	assert.Equal(t, LabNotFound.Value(), From(wrapped).Value())

	unknown := From(errors.New("boom"))
	assert.Equal(t, InternalErr.Value(), unknown.Value())
	assert.Equal(t, http.StatusInternalServerError, unknown.HTTPStatus())
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(EquipmentUnavailable)
	assert.NoError(t, err)
	assert.Equal(t, "40010", string(b))
}
