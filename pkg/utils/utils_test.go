package utils_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-booking/pkg/utils"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	utils.RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	flags := newFlags(t, "--config", filepath.Join(dir, "missing.env"))

	cfg, err := utils.LoadConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "Movie Ticket Booking", cfg.App.Name)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, utils.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "movie_booking.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Database.MaxConns)
}

func TestLoadConfig_FilePrecedence(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "app.env")
	content := "APP_NAME=Cinema Paradiso\nDB_PATH=from-file.db\nDB_MAX_CONNS=3\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := utils.LoadConfig(newFlags(t, "--config", envFile))
		require.NoError(t, err)
		assert.Equal(t, "Cinema Paradiso", cfg.App.Name)
		assert.Equal(t, "from-file.db", cfg.Database.Path)
		assert.Equal(t, 3, cfg.Database.MaxConns)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("DB_PATH", "from-env.db")
		cfg, err := utils.LoadConfig(newFlags(t, "--config", envFile))
		require.NoError(t, err)
		assert.Equal(t, "from-env.db", cfg.Database.Path)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		t.Setenv("DB_PATH", "from-env.db")
		cfg, err := utils.LoadConfig(newFlags(t, "--config", envFile, "--db-path", "from-flag.db", "--debug"))
		require.NoError(t, err)
		assert.Equal(t, "from-flag.db", cfg.Database.Path)
		assert.True(t, cfg.App.Debug)
	})
}

func TestLoadConfig_NilFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := utils.LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, utils.DriverSQLite, cfg.Database.Driver)
}

func TestLoadConfig_InvalidDriver(t *testing.T) {
	dir := t.TempDir()
	_, err := utils.LoadConfig(newFlags(t, "--config", filepath.Join(dir, "none.env"), "--db-driver", "oracle"))
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestDatabaseConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     utils.DatabaseConfig
		wantErr bool
	}{
		{name: "sqlite with path", cfg: utils.DatabaseConfig{Driver: "sqlite", Path: "x.db"}},
		{name: "sqlite without path", cfg: utils.DatabaseConfig{Driver: "sqlite"}, wantErr: true},
		{name: "postgres with dsn", cfg: utils.DatabaseConfig{Driver: "postgres", DSN: "postgres://localhost/db"}},
		{name: "postgres without dsn", cfg: utils.DatabaseConfig{Driver: "postgres"}, wantErr: true},
		{name: "unknown driver", cfg: utils.DatabaseConfig{Driver: "mysql"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type phoneRequest struct {
	Phone string `validate:"required,number,min=7,max=15"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		phone   string
		wantMsg string
	}{
		{phone: "5551234"},
		{phone: "123456789012345"},
		{phone: "", wantMsg: "This field is required"},
		{phone: "555-1234", wantMsg: "Must contain digits only"},
		{phone: "+5551234", wantMsg: "Must contain digits only"},
		{phone: "123456", wantMsg: "Minimum length is 7"},
		{phone: "1234567890123456", wantMsg: "Maximum length is 15"},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			errs := utils.ValidateStruct(phoneRequest{Phone: tt.phone})
			if tt.wantMsg == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantMsg, errs["Phone"])
		})
	}
}

func TestFormatValidationErrors_SortedFields(t *testing.T) {
	got := utils.FormatValidationErrors(map[string]string{
		"Phone": "Must contain digits only",
		"Name":  "This field is required",
	})

	assert.Equal(t, "Name: This field is required; Phone: Must contain digits only", got)
}

func TestParseID(t *testing.T) {
	id, err := utils.ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := utils.ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"A1", "a2", "B5"}, utils.SplitList("A1, a2,,B5 ,"))
	assert.Empty(t, utils.SplitList(" , "))
}

func TestSessionContext(t *testing.T) {
	_, ok := utils.GetSessionIDFromContext(context.Background())
	assert.False(t, ok)

	id := utils.GenerateUUIDString()
	ctx := utils.SetSessionContext(context.Background(), id)
	got, ok := utils.GetSessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.Len(t, id, 36)
}

func TestInitLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := utils.InitLogger(dir, false)
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "movie-booking.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestInitLogger_NoSinks(t *testing.T) {
	logger, err := utils.InitLogger("", false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestResponses(t *testing.T) {
	var buf bytes.Buffer

	utils.ResponseHeading(&buf, "Movies")
	utils.ResponseSuccess(&buf, "Booking confirmed!")
	utils.ResponseError(&buf, "seat taken")

	out := buf.String()
	assert.Contains(t, out, "Movies")
	assert.Contains(t, out, "Booking confirmed!")
	assert.Contains(t, out, "Error: seat taken")
}
