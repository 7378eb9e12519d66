package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRecord struct {
	Name   string `bson:"name"`
	Phone  string `bson:"phone"`
	Hidden string `bson:"hidden,omitempty"`
}

func TestToMap_TheoTagBson(t *testing.T) {
	m, err := ToMap(sampleRecord{Name: "Công ty A", Phone: "0901234567"})
	assert.NoError(t, err)
	assert.Equal(t, "Công ty A", m["name"], "Key phải lấy theo tag bson")
	assert.Equal(t, "0901234567", m["phone"])
	_, ok := m["hidden"]
	assert.False(t, ok, "Trường omitempty rỗng không được xuất hiện trong map")
}

func TestToMap_StructLongNhau(t *testing.T) {
	type wrapper struct {
		Info sampleRecord `bson:"info"`
	}
	m, err := ToMap(wrapper{Info: sampleRecord{Name: "B", Phone: "0902"}})
	assert.NoError(t, err)
	inner, ok := m["info"].(map[string]interface{})
	assert.True(t, ok, "Struct lồng nhau phải thành map lồng nhau")
	assert.Equal(t, "B", inner["name"])
}
