package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// envDefaults lets site-wide settings come from the environment so that
// batch scripts do not repeat the same flags for every sample.
type envDefaults struct {
	GenomeSize        float64 `envconfig:"NANOSUM_GENOME_SIZE" default:"3.3e9"`
	QualityThresholds []int   `envconfig:"NANOSUM_QUALITY_THRESHOLDS" default:"20,25,30"`
	Format            string  `envconfig:"NANOSUM_FORMAT" default:"tsv"`
}

func loadEnvDefaults() envDefaults {
	var d envDefaults
	if err := envconfig.Process("", &d); err != nil {
		fmt.Fprintf(os.Stderr, "warning: bad NANOSUM_* environment value: %v\n", err)
		return envDefaults{
			GenomeSize:        3.3e9,
			QualityThresholds: []int{20, 25, 30},
			Format:            "tsv",
		}
	}
	return d
}
