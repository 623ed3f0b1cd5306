package batch

import (
	"encoding/json"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"spherecoord/internal/pointlist"
)

// Manifest describes one batch run.
type Manifest struct {
	RunID       string          `json:"run_id"`
	GeneratedAt string          `json:"generated_at"`
	Sets        []ManifestEntry `json:"sets"`
}

// ManifestEntry represents one point set in the output manifest.
type ManifestEntry struct {
	Index   int             `json:"index"`
	Name    string          `json:"name"`
	Image   string          `json:"image,omitempty"`
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Points  []ManifestPoint `json:"points"`
}

// ManifestPoint pairs an input point (after frame rotation) with its spherical form.
type ManifestPoint struct {
	X     number `json:"x"`
	Y     number `json:"y"`
	Z     number `json:"z"`
	R     number `json:"r"`
	Theta number `json:"theta"`
	Phi   number `json:"phi"`
}

// number encodes NaN and ±Inf as null, which encoding/json rejects otherwise.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// NewRunID returns a fresh identifier for a batch run.
func NewRunID() string {
	return uuid.NewString()
}

// BuildManifest pairs sets with their results. results[i] must belong to sets[i].
func BuildManifest(runID string, sets []pointlist.PointSet, results []Result) Manifest {
	m := Manifest{
		RunID:       runID,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Sets:        make([]ManifestEntry, len(sets)),
	}
	for i, set := range sets {
		framed := set.Frame()
		sph := set.Spherical()
		e := ManifestEntry{
			Index:  set.Index,
			Name:   set.Name,
			Points: make([]ManifestPoint, len(framed)),
		}
		if i < len(results) {
			e.Image = results[i].Image
			e.Success = results[i].Success
			e.Error = results[i].Error
		}
		for j, p := range framed {
			e.Points[j] = ManifestPoint{
				X: number(p[0]), Y: number(p[1]), Z: number(p[2]),
				R: number(sph[j].R), Theta: number(sph[j].Theta), Phi: number(sph[j].Phi),
			}
		}
		m.Sets[i] = e
	}
	return m
}

// WriteManifest writes manifest.json.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
