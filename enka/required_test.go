package enka

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withoutKey returns fixture with the key at path removed. Numeric path
// elements index into arrays.
func withoutKey(t *testing.T, fixture string, path ...string) string {
	t.Helper()

	var root any
	require.NoError(t, json.Unmarshal([]byte(fixture), &root))

	node := root
	for _, key := range path[:len(path)-1] {
		switch n := node.(type) {
		case map[string]any:
			node = n[key]
		case []any:
			i, err := strconv.Atoi(key)
			require.NoError(t, err)
			node = n[i]
		default:
			t.Fatalf("path %v does not resolve at %q", path, key)
		}
	}

	obj, ok := node.(map[string]any)
	require.True(t, ok, "path %v does not end in an object", path)
	require.Contains(t, obj, path[len(path)-1])
	delete(obj, path[len(path)-1])

	out, err := json.Marshal(root)
	require.NoError(t, err)
	return string(out)
}

// strictInto decodes b into a fresh T
func strictInto[T any](b []byte) error {
	var v T
	return decodeStrict(b, &v)
}

func TestMissingRequiredField(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		decode    func([]byte) error
		wantShape string
		wantField string
	}{
		{
			name:      "genshin hoyo hash",
			input:     withoutKey(t, genshinHoyoJSON, "hash"),
			decode:    strictInto[Hoyo],
			wantShape: "GenshinHoyo",
			wantField: "hash",
		},
		{
			name:      "genshin hoyo player info",
			input:     withoutKey(t, genshinHoyoJSON, "player_info"),
			decode:    strictInto[Hoyo],
			wantShape: "GenshinHoyo",
			wantField: "player_info",
		},
		{
			name:      "genshin hoyo nested profile picture",
			input:     withoutKey(t, genshinHoyoJSON, "player_info", "profilePicture"),
			decode:    strictInto[Hoyo],
			wantShape: "PlayerInfo",
			wantField: "profilePicture",
		},
		{
			name:      "weapon state",
			input:     withoutKey(t, weaponJSON, "weapon"),
			decode:    strictInto[Equip],
			wantShape: "EquipWeapon",
			wantField: "weapon",
		},
		{
			name:      "weapon stats",
			input:     withoutKey(t, weaponJSON, "flat", "weaponStats"),
			decode:    strictInto[Equip],
			wantShape: "FlatWeapon",
			wantField: "weaponStats",
		},
		{
			name:      "reliquary equip type",
			input:     withoutKey(t, reliquaryJSON, "flat", "equipType"),
			decode:    strictInto[Equip],
			wantShape: "FlatReliquary",
			wantField: "equipType",
		},
		{
			name:      "reliquary main prop",
			input:     withoutKey(t, reliquaryJSON, "reliquary", "mainPropId"),
			decode:    strictInto[Equip],
			wantShape: "Reliquary",
			wantField: "mainPropId",
		},
		{
			name:      "player ttl",
			input:     withoutKey(t, playerInfoOnlyJSON, "ttl"),
			decode:    strictInto[Player],
			wantShape: "Player",
			wantField: "ttl",
		},
		{
			name:      "player owner username",
			input:     withoutKey(t, playerInfoOnlyJSON, "owner", "username"),
			decode:    strictInto[Player],
			wantShape: "Profile",
			wantField: "username",
		},
		{
			name:      "full player nickname",
			input:     withoutKey(t, playerFullJSON, "playerInfo", "nickname"),
			decode:    strictInto[playerResponse],
			wantShape: "PlayerInfo",
			wantField: "nickname",
		},
		{
			name:      "full player avatar skills",
			input:     withoutKey(t, playerFullJSON, "avatarInfoList", "0", "skillLevelMap"),
			decode:    strictInto[playerResponse],
			wantShape: "AvatarInfo",
			wantField: "skillLevelMap",
		},
		{
			name:      "build hoyo",
			input:     withoutKey(t, buildJSON, "hoyo"),
			decode:    strictInto[Build],
			wantShape: "Build",
			wantField: "hoyo",
		},
		{
			name:      "build prop type",
			input:     withoutKey(t, buildJSON, "avatar_data", "propMap", "4001", "type"),
			decode:    strictInto[Build],
			wantShape: "PropValue",
			wantField: "type",
		},
		{
			name:      "build equip inside avatar",
			input:     withoutKey(t, buildJSON, "avatar_data", "equipList", "1", "flat", "icon"),
			decode:    strictInto[Build],
			wantShape: "FlatReliquary",
			wantField: "icon",
		},
		{
			name:      "builds map entry",
			input:     withoutKey(t, buildsJSON, "10000002", "0", "settings"),
			decode:    strictInto[map[AvatarID][]Build],
			wantShape: "Build",
			wantField: "settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode([]byte(tt.input))
			require.Error(t, err)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantShape, missing.Shape)
			assert.Equal(t, tt.wantField, missing.Field)
		})
	}
}

func TestBareGenshinHoyoRejected(t *testing.T) {
	var h Hoyo
	err := json.Unmarshal([]byte(`{"hoyo_type": 0}`), &h)
	require.Error(t, err)
	assert.False(t, h.IsGenshin())

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "GenshinHoyo", missing.Shape)
}

func TestBareEquipRejected(t *testing.T) {
	for _, itemType := range []string{ItemWeapon, ItemReliquary} {
		t.Run(itemType, func(t *testing.T) {
			var e Equip
			err := json.Unmarshal([]byte(`{"flat": {"itemType": "`+itemType+`"}}`), &e)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "itemId", missing.Field)
		})
	}
}

func TestEmptyBuildRejected(t *testing.T) {
	err := decodeStrict([]byte(`{}`), &Build{})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Build", missing.Shape)
	assert.Equal(t, "id", missing.Field)
}

func TestRequiredFieldNull(t *testing.T) {
	err := decodeStrict([]byte(withNull(t, buildJSON, "name")), &Build{})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)
}

func TestOptionalFieldsMayBeAbsent(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target any
	}{
		{"build image", withoutKey(t, buildJSON, "image"), &Build{}},
		{"player owner", withoutKey(t, playerInfoOnlyJSON, "owner"), &Player{}},
		{"player signature", withoutKey(t, playerInfoOnlyJSON, "playerInfo", "signature"), &Player{}},
		{"avatar fetter info", withoutKey(t, buildJSON, "avatar_data", "fetterInfo"), &Build{}},
		{"reliquary substats", withoutKey(t, reliquaryJSON, "flat", "reliquarySubstats"), &Equip{}},
		{"weapon affix map", withoutKey(t, weaponJSON, "weapon", "affixMap"), &Equip{}},
		{"hoyo avatar order", withoutKey(t, genshinHoyoJSON, "avatar_order"), &Hoyo{}},
		{"settings keys", withoutKey(t, buildJSON, "settings", "caption"), &Build{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, decodeStrict([]byte(tt.input), tt.target))
		})
	}
}

// withNull returns fixture with the top-level key set to null
func withNull(t *testing.T, fixture, key string) string {
	t.Helper()

	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(fixture), &obj))
	require.Contains(t, obj, key)
	obj[key] = json.RawMessage("null")

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	return string(out)
}
