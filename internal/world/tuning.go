package world

// Arena and entity tuning. These are compiled in; nothing reads them from
// config.
const (
	ArenaHalfExtent = 50.0
	WallMargin      = 2.0
	Limit           = ArenaHalfExtent - WallMargin // planar clamp for the player

	EyeHeight      = 1.6
	PlayerHealth   = 100
	FrictionCoeff  = 10.0
	AccelCoeff     = 400.0
	EnemyHeight    = 1.5
	EnemyHealth    = 3
	EnemySpeed     = 3.0
	EnemyFlashTime = 0.1 // seconds the hit flash stays on

	HitRadius        = 1.0
	ContactRadius    = 1.5
	ContactDamage    = 10
	KnockbackDist    = 2.0
	ProjectileDamage = 1
	Gravity          = 9.8

	SpawnInterval  = 3.0 // seconds
	SpawnCap       = 10
	SpawnMinRadius = 20.0
	SpawnRadiusVar = 10.0
)
