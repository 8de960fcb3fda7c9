// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testInner struct {
	Tab int `default:"4"`
}

type testConfig struct {
	Scheme   string        `default:"default"`
	Verbose  bool          `default:"true"`
	Ratio    float32       `default:"0.5"`
	Paths    []string      `default:"a, b"`
	Debounce time.Duration `default:"50ms"`
	Inner    testInner
	InnerPtr *testInner
	NoTag    string
	hidden   string `default:"x"`
}

func TestSetFromDefaultTags(t *testing.T) {
	cfg := &testConfig{NoTag: "keep"}
	assert.NoError(t, SetFromDefaultTags(cfg))
	assert.Equal(t, "default", cfg.Scheme)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, float32(0.5), cfg.Ratio)
	assert.Equal(t, []string{"a", "b"}, cfg.Paths)
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce)
	assert.Equal(t, 4, cfg.Inner.Tab)
	assert.Nil(t, cfg.InnerPtr)
	assert.Equal(t, "keep", cfg.NoTag)
	assert.Equal(t, "", cfg.hidden)

	assert.NoError(t, SetFromDefaultTags(nil))
	assert.Error(t, SetFromDefaultTags(&[]int{}))
}

func TestSetFromDefaultTagsError(t *testing.T) {
	type bad struct {
		N int `default:"many"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
}

func TestNonPointer(t *testing.T) {
	v := 3
	pv := &v
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeOf(&pv)))
	assert.Equal(t, 3, NonPointerValue(reflect.ValueOf(&pv)).Interface())
	assert.Equal(t, reflect.Pointer, PointerValue(reflect.ValueOf(v)).Kind())
}
