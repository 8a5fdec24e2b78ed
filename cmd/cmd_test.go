package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/artifactsmmo/artifacts"
	"github.com/s0up4200/artifactsmmo/config"
)

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "artifacts", "testdata", name))
	require.NoError(t, err)
	return data
}

// run executes the CLI against handler and returns stdout
func run(t *testing.T, handler http.Handler, args ...string) (string, error) {
	t.Helper()

	// fixtures are read relative to the package dir, so load them before chdir
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("ARTIFACTS_API_URL", server.URL)

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--token", "test-token"}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag in the command tree to its default, since
// cobra keeps parsed values between Execute calls
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func page(t *testing.T, data any) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"data":  data,
		"total": 2,
		"page":  1,
		"size":  50,
		"pages": 1,
	})
	require.NoError(t, err)
	return body
}

func TestStatusCommand(t *testing.T) {
	status := fixture(t, "status.json")
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write(status)
	})

	out, err := run(t, mux, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "online")
	assert.Contains(t, out, "Season 2 is live")
}

func TestItemsFilter(t *testing.T) {
	items := []map[string]any{
		{"name": "Copper Dagger", "code": "copper_dagger", "level": 1, "type": "weapon"},
		{"name": "Copper Ore", "code": "copper_ore", "level": 1, "type": "resource"},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write(page(t, items))
	})

	out, err := run(t, mux, "--json", "items", "--filter", `type == "weapon"`)
	require.NoError(t, err)

	var got []artifacts.Item
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "copper_dagger", got[0].Code)

	out, err = run(t, mux, "--json", "items", "--filter", `lower(name) contains "ore" and not equippable`)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "copper_ore", got[0].Code)

	out, err = run(t, mux, "--json", "items")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)

	_, err = run(t, mux, "items", "--filter", `type ==`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter expression")
}

func TestItemsHelpExampleRuns(t *testing.T) {
	items := []map[string]any{
		{"name": "Fire Staff", "code": "fire_staff", "level": 5, "type": "weapon",
			"effects": []map[string]any{{"name": "attack_fire", "value": 12}}},
		{"name": "Copper Dagger", "code": "copper_dagger", "level": 1, "type": "weapon",
			"effects": []map[string]any{{"name": "attack_earth", "value": 6}}},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		w.Write(page(t, items))
	})

	out, err := run(t, mux, "--json", "items", "--filter",
		`type == "weapon" and level <= 10 and hasEffect("attack_fire")`)
	require.NoError(t, err)

	var got []artifacts.Item
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "fire_staff", got[0].Code)
}

func TestFlagsArePerCommand(t *testing.T) {
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	craft, _, err := actionCmd.Find([]string{"craft"})
	require.NoError(t, err)
	use, _, err := actionCmd.Find([]string{"use"})
	require.NoError(t, err)

	require.NoError(t, craft.Flags().Set("quantity", "5"))
	assert.Equal(t, 5, quantityFlag(craft))
	assert.Equal(t, 1, quantityFlag(use))

	items, _, err := rootCmd.Find([]string{"items"})
	require.NoError(t, err)
	monsters, _, err := rootCmd.Find([]string{"monsters"})
	require.NoError(t, err)

	require.NoError(t, items.Flags().Set("filter", "level > 1"))
	filterExpr, err := monsters.Flags().GetString("filter")
	require.NoError(t, err)
	assert.Empty(t, filterExpr)
}

func TestQuantityDoesNotLeakBetweenRuns(t *testing.T) {
	craft := fixture(t, "character_craft.json")
	use := fixture(t, "character_use_item.json")

	var quantities []float64
	record := func(w http.ResponseWriter, r *http.Request, body []byte) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		quantities = append(quantities, req["quantity"].(float64))
		w.Write(body)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /my/{name}/action/crafting", func(w http.ResponseWriter, r *http.Request) {
		record(w, r, craft)
	})
	mux.HandleFunc("POST /my/{name}/action/use", func(w http.ResponseWriter, r *http.Request) {
		record(w, r, use)
	})

	_, err := run(t, mux, "action", "craft", "hero", "copper_dagger", "-q", "5")
	require.NoError(t, err)
	_, err = run(t, mux, "action", "use", "hero", "cooked_chicken")
	require.NoError(t, err)
	_, err = run(t, mux, "action", "craft", "hero", "copper_dagger")
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 1, 1}, quantities)
}

func TestCharacterCommandKeepsOrder(t *testing.T) {
	var characters struct {
		Data []artifacts.Character `json:"data"`
	}
	require.NoError(t, json.Unmarshal(fixture(t, "my_characters.json"), &characters))
	byName := map[string]artifacts.Character{}
	for _, ch := range characters.Data {
		byName[ch.Name] = ch
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /characters/{name}", func(w http.ResponseWriter, r *http.Request) {
		ch, ok := byName[r.PathValue("name")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":{"code":404,"message":"Character not found."}}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": ch})
	})

	out, err := run(t, mux, "--json", "character", "alt", "hero")
	require.NoError(t, err)

	var got []artifacts.Character
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "alt", got[0].Name)
	assert.Equal(t, "hero", got[1].Name)

	_, err = run(t, mux, "character", "hero", "ghost")
	require.Error(t, err)
	var apiErr *artifacts.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
}

func TestEquipPicksFreeSlot(t *testing.T) {
	character := fixture(t, "character.json")
	equip := fixture(t, "character_equip.json")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/{code}", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"name":"Iron Ring","code":"iron_ring","level":10,"type":"ring","subtype":"","description":"","effects":[],"craft":null}}`)
	})
	mux.HandleFunc("GET /characters/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.Write(character)
	})
	mux.HandleFunc("POST /my/{name}/action/equip", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// ring1 is taken in the fixture
		assert.Equal(t, "ring2", body["slot"])
		assert.Equal(t, "iron_ring", body["code"])
		w.Write(equip)
	})

	_, err := run(t, mux, "action", "equip", "hero", "iron_ring")
	require.NoError(t, err)
}

func TestActionCooldownError(t *testing.T) {
	cooldown := fixture(t, "error_cooldown.json")
	mux := http.NewServeMux()
	mux.HandleFunc("POST /my/{name}/action/fight", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(499)
		w.Write(cooldown)
	})

	_, err := run(t, mux, "action", "fight", "hero")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hero is still in cooldown")
	assert.ErrorIs(t, err, &artifacts.APIError{Code: artifacts.CodeCooldown})
}

func TestSleepCooldown(t *testing.T) {
	logger = zerolog.Nop()
	now := time.Now()

	t.Run("expired cooldown returns immediately", func(t *testing.T) {
		cd := artifacts.Cooldown{Expiration: now.Add(-time.Second)}
		assert.NoError(t, sleepCooldown(context.Background(), cd, now))
	})

	t.Run("cancelled context stops the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		cd := artifacts.Cooldown{Expiration: now.Add(time.Hour)}
		assert.ErrorIs(t, sleepCooldown(ctx, cd, now), context.Canceled)
	})
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			setupLogger(config.LoggingConfig{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
