package config

import (
	"os"
	"strconv"
	"time"
)

type DraftCfg struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func NewDraftCfg() *DraftCfg {
	ttlHours := os.Getenv("DRAFT_TTL_HOURS")
	sweepSec := os.Getenv("DRAFT_SWEEP_INTERVAL_SEC")
	varInt, err := strconv.Atoi(ttlHours)
	if err != nil {
		varInt = 72
	}
	varInt2, err := strconv.Atoi(sweepSec)
	if err != nil {
		varInt2 = 600
	}
	return &DraftCfg{
		TTL:           time.Duration(varInt) * time.Hour,
		SweepInterval: time.Duration(varInt2) * time.Second,
	}
}
