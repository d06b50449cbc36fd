package repr

import (
	"testing"

	"github.com/go-leo/gox/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TestGoSyntax(t *testing.T) {
	assert.Equal(t, "1", GoSyntax(1))
	assert.Equal(t, `"Bob"`, GoSyntax("Bob"))
	assert.Equal(t, "true", GoSyntax(true))
	assert.Equal(t, "<nil>", GoSyntax(nil))
	assert.Equal(t, "repr.point{X:1, Y:2}", GoSyntax(point{X: 1, Y: 2}))
}

func TestJSON(t *testing.T) {
	ja := jsonassert.New(t)
	ja.Assertf(JSON(point{X: 1, Y: 2}), `{"x": 1, "y": 2}`)
	ja.Assertf(JSON(map[string]any{"name": "Bob", "tags": []string{"a"}}), `{"name": "Bob", "tags": ["a"]}`)
	assert.Equal(t, `"Bob"`, JSON("Bob"))
	assert.Equal(t, "null", JSON(nil))
}

func TestJSONMatchesEncoder(t *testing.T) {
	v := map[string]any{"b": []int{1, 2}, "a": "x"}
	expected := string(errorx.Ignore(jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)))
	assert.Equal(t, expected, JSON(v))
}
