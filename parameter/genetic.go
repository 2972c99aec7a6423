package parameter

// Genetic Algorithm - Engine Configuration
const (
	// GAIslandCount is the number of semi-independent sub-populations.
	// The evaluation worker pool is sized 1:1 with islands.
	GAIslandCount = 4

	// GAMigrationInterval is generations between ring migrations
	GAMigrationInterval = 5

	// GAPopulationSize is the default number of chromosomes per generation
	GAPopulationSize = 128

	// GANbShapes is the default number of genes (shapes) per chromosome
	GANbShapes = 96

	// GAEliteCount is preserved best performers per island per generation
	GAEliteCount = 1

	// GAMutationRate is per-gene mutation probability (0.0-1.0)
	GAMutationRate = 0.02

	// GACrossoverRate is probability of sexual reproduction (0.0-1.0)
	GACrossoverRate = 0.85

	// GAMaxIterations caps a run's generation count
	GAMaxIterations = 100000

	// GAStatsHistory bounds the retained per-generation statistics
	GAStatsHistory = 1024
)

// Genetic Algorithm - Gene Geometry Bounds
const (
	// GAImageWidth is the default horizontal coordinate bound for genes
	GAImageWidth = 640

	// GAImageHeight is the default vertical coordinate bound for genes
	GAImageHeight = 480

	// GARadiusMin and GARadiusMax bound circle gene radii
	GARadiusMin = 1
	GARadiusMax = 50
)

// Persistence
const (
	// GAPersistencePath is the default directory for solution save files
	GAPersistencePath = "./solutions"
)
