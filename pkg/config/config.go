package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Data   DataConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// DataConfig ubicación del snapshot persistido.
// El estado completo se serializa a un único slot nombrado dentro de Dir.
type DataConfig struct {
	Dir  string
	Slot string
}

// ReportConfig límites de los widgets de reportes y dashboard.
// Los defaults replican los de la interfaz: top 10 productos, 8 alertas,
// 10 movimientos recientes.
type ReportConfig struct {
	TopN          int
	AlertLimit    int
	ActivityLimit int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_DIR, REPORT_TOP_N, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-lite"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			Dir:  getString(v, "DATA_DIR", "./data"),
			Slot: getString(v, "DATA_SLOT", "inventoryData"),
		},
		Report: ReportConfig{
			TopN:          getInt(v, "REPORT_TOP_N", 10),
			AlertLimit:    getInt(v, "ALERT_LIMIT", 8),
			ActivityLimit: getInt(v, "ACTIVITY_LIMIT", 10),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
