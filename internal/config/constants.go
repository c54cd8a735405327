// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "FitKeep"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort             = ":8080"
	DefaultLogLevel               = "info"
	DefaultCalorieAdjustment      = 300 // kcal
	DefaultSyncRetryAttempts      = 3
	DefaultSyncRetryBaseMs        = 50
	DefaultCatalogCacheTTLSeconds = 300
)

// マクロ栄養素の目標配分 (タンパク質/炭水化物/脂質)
const (
	DefaultProteinPct = 0.30
	DefaultCarbsPct   = 0.40
	DefaultFatPct     = 0.30
)
