package db

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndRetrieve(t *testing.T) {
	kvs := NewKeyValueStore()

	in := TestStruct{ID: "t1", Name: "first"}
	require.NoError(t, kvs.Store("owner1", "obj", in, 1))

	value, err := kvs.Retrieve("owner1", "obj")
	require.NoError(t, err)

	out, ok := value.(*TestStruct)
	require.True(t, ok, "got %T", value)
	assert.Equal(t, in, *out)
}

func TestRetrieveReturnsLatestVersion(t *testing.T) {
	kvs := NewKeyValueStore()

	require.NoError(t, kvs.Store("owner1", "obj", TestStruct{ID: "t1", Name: "v1"}, 1))
	require.NoError(t, kvs.Store("owner1", "obj", TestStruct{ID: "t1", Name: "v3"}, 3))
	require.NoError(t, kvs.Store("owner1", "obj", TestStruct{ID: "t1", Name: "v2"}, 2))

	value, err := kvs.Retrieve("owner1", "obj")
	require.NoError(t, err)
	assert.Equal(t, "v3", value.(*TestStruct).Name)

	all, err := kvs.RetrieveAllVersions("owner1", "obj")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "v1", all[0].(*TestStruct).Name)
	assert.Equal(t, "v3", all[2].(*TestStruct).Name)
}

func TestStoreReplacesExistingVersion(t *testing.T) {
	kvs := NewKeyValueStore()

	require.NoError(t, kvs.Store("owner1", "obj", TestStruct{ID: "t1", Name: "old"}, 1))
	require.NoError(t, kvs.Store("owner1", "obj", TestStruct{ID: "t1", Name: "new"}, 1))

	all, err := kvs.RetrieveAllVersions("owner1", "obj")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].(*TestStruct).Name)
}

func TestRetrieveMissing(t *testing.T) {
	kvs := NewKeyValueStore()

	_, err := kvs.Retrieve("ghost", "obj")
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	require.NoError(t, kvs.Store("owner1", "obj", TestStruct{ID: "t1", Name: "x"}, 1))
	_, err = kvs.Retrieve("owner1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRejectsNonStructAndUntaggedFields(t *testing.T) {
	kvs := NewKeyValueStore()

	assert.Error(t, kvs.Store("owner1", "obj", "just a string", 1))

	type untagged struct {
		Name string
	}
	assert.Error(t, kvs.Store("owner1", "obj", untagged{Name: "x"}, 1))
}

func TestListByType(t *testing.T) {
	kvs := NewKeyValueStore()

	require.NoError(t, kvs.Store("owner1", "a", TestStruct{ID: "a", Name: "a"}, 1))
	require.NoError(t, kvs.Store("owner1", "b", TestStruct{ID: "b", Name: "b"}, 1))

	values, err := kvs.ListByType("owner1", reflect.TypeOf(TestStruct{}))
	require.NoError(t, err)
	assert.Len(t, values, 2)
}

func TestDeleteOwner(t *testing.T) {
	kvs := NewKeyValueStore()

	require.NoError(t, kvs.Store("owner1", "obj", TestStruct{ID: "t1", Name: "x"}, 1))
	require.NoError(t, kvs.DeleteOwner("owner1"))

	_, err := kvs.Retrieve("owner1", "obj")
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	assert.NoError(t, kvs.DeleteOwner("ghost"))
}
