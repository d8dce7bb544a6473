package db

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// KeyValueStore is the in-memory, versioned session store. Values are
// grouped by owner (a session id), then key, then version; Retrieve always
// returns the latest version. All access is mutex-guarded.
type KeyValueStore struct {
	store map[string]map[string][]storedValue // owner -> key -> versions
	mu    sync.Mutex
}

// storedValue holds one version's JSON payload plus the concrete type it
// deserializes back into.
type storedValue struct {
	JsonData string
	Type     reflect.Type
	Version  int
}

// NewKeyValueStore initializes and returns a new KeyValueStore.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		store: make(map[string]map[string][]storedValue),
	}
}

// Store persists a struct value as JSON under owner/key at the given
// version. Storing an existing version replaces it in place. Every field of
// the value must carry a json tag, otherwise round-tripping would silently
// drop it.
func (kvs *KeyValueStore) Store(owner, key string, value interface{}, version int) error {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("value must be a struct")
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if _, ok := field.Tag.Lookup("json"); !ok {
			return fmt.Errorf("field %s does not have a json tag", field.Name)
		}
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	kvs.mu.Lock()
	defer kvs.mu.Unlock()

	if _, exists := kvs.store[owner]; !exists {
		kvs.store[owner] = make(map[string][]storedValue)
	}

	versions := kvs.store[owner][key]
	for i, sv := range versions {
		if sv.Version == version {
			versions[i] = storedValue{JsonData: string(jsonData), Type: t, Version: version}
			return nil
		}
	}

	versions = append(versions, storedValue{JsonData: string(jsonData), Type: t, Version: version})
	sort.SliceStable(versions, func(i, j int) bool { return versions[i].Version < versions[j].Version })
	kvs.store[owner][key] = versions

	return nil
}

// Retrieve returns the latest version stored under owner/key, deserialized
// into a pointer to its original type.
func (kvs *KeyValueStore) Retrieve(owner, key string) (interface{}, error) {
	kvs.mu.Lock()
	defer kvs.mu.Unlock()

	ownerStore, ok := kvs.store[owner]
	if !ok {
		return nil, ErrOwnerNotFound
	}
	versions, ok := ownerStore[key]
	if !ok || len(versions) == 0 {
		return nil, ErrNotFound
	}
	return deserialize(versions[len(versions)-1])
}

// RetrieveAllVersions returns every stored version under owner/key in
// ascending version order.
func (kvs *KeyValueStore) RetrieveAllVersions(owner, key string) ([]interface{}, error) {
	kvs.mu.Lock()
	defer kvs.mu.Unlock()

	ownerStore, ok := kvs.store[owner]
	if !ok {
		return nil, ErrOwnerNotFound
	}
	versions, ok := ownerStore[key]
	if !ok || len(versions) == 0 {
		return nil, ErrNotFound
	}

	out := make([]interface{}, 0, len(versions))
	for _, sv := range versions {
		v, err := deserialize(sv)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ListByType returns the latest version of every key under an owner whose
// stored type matches objType.
func (kvs *KeyValueStore) ListByType(owner string, objType reflect.Type) ([]interface{}, error) {
	kvs.mu.Lock()
	defer kvs.mu.Unlock()

	ownerStore, ok := kvs.store[owner]
	if !ok {
		return nil, ErrOwnerNotFound
	}

	var result []interface{}
	for _, versions := range ownerStore {
		if len(versions) == 0 {
			continue
		}
		latest := versions[len(versions)-1]
		if latest.Type != objType {
			continue
		}
		v, err := deserialize(latest)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// DeleteOwner removes every key stored under an owner. Deleting an unknown
// owner is a no-op.
func (kvs *KeyValueStore) DeleteOwner(owner string) error {
	kvs.mu.Lock()
	defer kvs.mu.Unlock()
	delete(kvs.store, owner)
	return nil
}

func deserialize(sv storedValue) (interface{}, error) {
	v := reflect.New(sv.Type).Interface()
	if err := json.Unmarshal([]byte(sv.JsonData), v); err != nil {
		return nil, err
	}
	return v, nil
}
