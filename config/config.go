package config

import "image/color"

// Config holds window settings
type Config struct {
	Title  string
	Width  int
	Height int
}

// SimConfig contains frame stepping constants shared by every system
type SimConfig struct {
	// Pace scales frame time into the per-frame units the movement tuning is expressed in
	Pace         float64 `yaml:"pace"`
	MaxFrameTime float64 `yaml:"max_frame_time"` // Seconds; longer frames are clamped
	// ReferenceRate is the frame rate acceleration, turnaround and friction are tuned at
	ReferenceRate float64 `yaml:"reference_rate"`
	TickRate      int     `yaml:"tick_rate"`
	TileSize      int     `yaml:"-"`
	CellSize      int     `yaml:"-"` // resolv space cell size
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pace units)
	TopSpeed       float64 `yaml:"top_speed"`
	Acceleration   float64 `yaml:"acceleration"`
	TurnAround     float64 `yaml:"turn_around"`
	Friction       float64 `yaml:"friction"`
	Gravity        float64 `yaml:"gravity"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	LaunchPadSpeed float64 `yaml:"launch_pad_speed"`

	// Contact normals within this dot product of an axis count as floor, ceiling or wall
	AxisDot float64 `yaml:"axis_dot"`

	// Health
	MaxHealth         uint `yaml:"max_health"`
	BulletDamage      uint `yaml:"bullet_damage"`
	HealthPackRestore uint `yaml:"health_pack_restore"`
	CreeperDamage     uint `yaml:"creeper_damage"`
	CreeperLethal     uint `yaml:"creeper_lethal"` // Detonation kills at or below this health

	// Invincibility (seconds)
	InvincibleTime float64 `yaml:"invincible_time"`
	FlashWindow    float64 `yaml:"flash_window"`
	FlashInterval  float64 `yaml:"flash_interval"`
}

// HostileConfig contains tuning for one hostile archetype
type HostileConfig struct {
	MaxHealth       uint    `yaml:"max_health"`
	TopSpeed        float64 `yaml:"top_speed"`
	PatrolSpeed     float64 `yaml:"patrol_speed"`
	FlipInterval    float64 `yaml:"flip_interval"`
	TrackingSpeed   float64 `yaml:"tracking_speed"`
	ScanSpeed       float64 `yaml:"scan_speed"`
	AngleTolerance  float64 `yaml:"angle_tolerance"`
	TriggerDistance float64 `yaml:"trigger_distance"`
	FireInterval    float64 `yaml:"fire_interval"`
	ContactDamage   uint    `yaml:"contact_damage"`
	ContactCooldown float64 `yaml:"contact_cooldown"`
	Bullet          Kind    `yaml:"-"`
}

// WeaponConfig contains the grappler's firing configuration
type WeaponConfig struct {
	FireInterval        float64 `yaml:"fire_interval"`
	DefaultFireInterval float64 `yaml:"default_fire_interval"`
	SpreadCount         int     `yaml:"spread_count"`
	SpreadAngle         float64 `yaml:"spread_angle"`
	Bullet              Kind    `yaml:"-"`
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Speed    float64 `yaml:"speed"`
	Lifespan float64 `yaml:"lifespan"`
}

// ParticleConfig describes one cosmetic particle burst
type ParticleConfig struct {
	Effect   EffectID
	Life     float64
	MaxScale float64
	ScaleIn  float64 // Fraction of life spent growing
	ScaleOut float64 // Fraction of life spent shrinking
	FadeOut  float64 // Fraction of life spent fading
	Tint     color.RGBA
}

// EffectsConfig contains death and detonation particle presets
type EffectsConfig struct {
	Smoke       ParticleConfig
	Spark       ParticleConfig
	PlayerSpark ParticleConfig
	Explosion   ParticleConfig
}

// DirectorConfig contains level lifecycle configuration
type DirectorConfig struct {
	StartingLives int     `yaml:"starting_lives"`
	WaitTime      float64 `yaml:"wait_time"`
	BannerOffset  float64 `yaml:"-"` // lose banner height above the death position
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player per pace unit (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
	ShakeIntensity          float64 // Pixels, creeper detonation
	ShakeDuration           float64 // Seconds
}

// SpriteSize is the drawn extent of an archetype; its bounding radius is half the larger side
type SpriteSize struct {
	W, H float64
}

// DebugConfig contains developer switches
type DebugConfig struct {
	LogLevel    string
	DrawCircles bool
	SkipMenu    bool
}

var C *Config
var Sim SimConfig
var Player PlayerConfig
var Hostiles map[Kind]HostileConfig
var Weapon WeaponConfig
var Bullet BulletConfig
var Effects EffectsConfig
var Director DirectorConfig
var Camera CameraConfig
var Sprites map[Kind]SpriteSize
var Debug DebugConfig

// Colors
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange      = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	OrangeRed   = color.RGBA{R: 255, G: 69, B: 0, A: 255}
	HealthGreen = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	HealthRed   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	WinGreen    = color.RGBA{R: 0, G: 200, B: 0, A: 255}
)

func init() {
	C = &Config{
		Title:  "Runnin' Gunner",
		Width:  1280,
		Height: 720,
	}

	Sim = SimConfig{
		Pace:          40.0,
		MaxFrameTime:  0.05,
		ReferenceRate: 60,
		TickRate:      60,
		TileSize:      64,
		CellSize:      32,
	}

	Player = PlayerConfig{
		TopSpeed:       15.0,
		Acceleration:   0.3,
		TurnAround:     0.8,
		Friction:       0.8,
		Gravity:        1.5,
		JumpSpeed:      -20.0,
		LaunchPadSpeed: -35.0,

		AxisDot: 0.95,

		MaxHealth:         12,
		BulletDamage:      1,
		HealthPackRestore: 4,
		CreeperDamage:     4,
		CreeperLethal:     3,

		InvincibleTime: 10.0,
		FlashWindow:    3.0,
		FlashInterval:  0.2,
	}

	Hostiles = map[Kind]HostileConfig{
		KindBat: {
			MaxHealth:    3,
			PatrolSpeed:  1.0,
			FlipInterval: 1.0,
			FireInterval: 1.0,
			Bullet:       KindBullet2,
		},
		KindCreeper: {
			MaxHealth:       3,
			TopSpeed:        8.0,
			TrackingSpeed:   6.0,
			AngleTolerance:  0.05,
			TriggerDistance: 80.0,
		},
		KindTurret: {
			MaxHealth:      3,
			TrackingSpeed:  2.0,
			ScanSpeed:      0.4,
			AngleTolerance: 0.05,
			FireInterval:   1.0,
			Bullet:         KindBullet,
		},
		KindSwooper: {
			MaxHealth:       2,
			PatrolSpeed:     3.0,
			FlipInterval:    2.0,
			ContactDamage:   2,
			ContactCooldown: 1.5,
		},
	}

	Weapon = WeaponConfig{
		FireInterval:        0.2,
		DefaultFireInterval: 1.0,
		SpreadCount:         3,
		SpreadAngle:         0.15,
		Bullet:              KindBullet2,
	}

	Bullet = BulletConfig{
		Speed:    500.0,
		Lifespan: 2.0,
	}

	Effects = EffectsConfig{
		Smoke: ParticleConfig{
			Effect:   EffectSmoke,
			Life:     2.0,
			MaxScale: 4.0,
			ScaleIn:  0.5,
			FadeOut:  0.8,
			Tint:     White,
		},
		Spark: ParticleConfig{
			Effect:   EffectSpark,
			Life:     0.5,
			MaxScale: 1.5,
			ScaleIn:  0.4,
			ScaleOut: 0.3,
			FadeOut:  0.5,
			Tint:     Orange,
		},
		PlayerSpark: ParticleConfig{
			Effect:   EffectSpark,
			Life:     0.5,
			MaxScale: 1.5,
			ScaleIn:  0.4,
			ScaleOut: 0.3,
			FadeOut:  0.5,
			Tint:     OrangeRed,
		},
		Explosion: ParticleConfig{
			Effect:   EffectCreeperExplosion,
			Life:     2.0,
			MaxScale: 8.0,
			ScaleIn:  0.01,
			FadeOut:  0.8,
			Tint:     White,
		},
	}

	Director = DirectorConfig{
		StartingLives: 3,
		WaitTime:      3.0,
		BannerOffset:  64.0,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.15,
		LookAheadDistanceX:      120.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.1,
		ShakeIntensity:          12.0,
		ShakeDuration:           0.4,
	}

	Sprites = map[Kind]SpriteSize{
		KindPlayer:     {W: 48, H: 64},
		KindGrappler:   {W: 56, H: 16},
		KindBullet:     {W: 12, H: 12},
		KindBullet2:    {W: 12, H: 12},
		KindBat:        {W: 64, H: 40},
		KindCreeper:    {W: 48, H: 48},
		KindTurret:     {W: 64, H: 64},
		KindSwooper:    {W: 64, H: 40},
		KindSpike:      {W: 64, H: 48},
		KindDoor:       {W: 64, H: 96},
		KindStar:       {W: 40, H: 40},
		KindHealthPack: {W: 40, H: 40},
		KindOneUp:      {W: 40, H: 40},
		KindShotgun:    {W: 48, H: 24},
		KindLaunchPad:  {W: 64, H: 24},
	}

	Debug = DebugConfig{
		LogLevel:    "info",
		DrawCircles: false,
		SkipMenu:    false,
	}
}

// Radius returns the bounding circle radius of a kind.
func Radius(k Kind) float64 {
	s := Sprites[k]
	return max(s.W, s.H) / 2
}
