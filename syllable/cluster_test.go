package syllable

import (
	"math/rand"
	"testing"

	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

func englishModel(t *testing.T) *language.Model {
	t.Helper()
	m, err := language.Compile(language.English())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	return m
}

func TestBuildClusterDeterminism(t *testing.T) {
	m := englishModel(t)
	build := func(seed int64) string {
		cc := &ClusterContext{
			Rand:      rand.New(rand.NewSource(seed)),
			Model:     m,
			Position:  phonology.Onset,
			MaxLength: 3,
		}
		BuildCluster(cc)
		sounds := ""
		for _, p := range cc.Cluster {
			sounds += p.Sound
		}
		return sounds
	}
	for seed := int64(1); seed <= 20; seed++ {
		if a, b := build(seed), build(seed); a != b {
			t.Fatalf("seed %d: %q != %q", seed, a, b)
		}
	}
}

func TestOnsetSonorityRises(t *testing.T) {
	m := englishModel(t)
	for seed := int64(0); seed < 500; seed++ {
		cc := &ClusterContext{
			Rand:      rand.New(rand.NewSource(seed)),
			Model:     m,
			Position:  phonology.Onset,
			MaxLength: 3,
		}
		cluster := BuildCluster(cc)
		for i := 1; i < len(cluster); i++ {
			prev, cur := cluster[i-1], cluster[i]
			if m.Sonority.Of(cur) > m.Sonority.Of(prev) {
				continue
			}
			// Documented exceptions.
			if prev.Sound == "s" && cur.Manner == phonology.MannerStop {
				continue
			}
			if prev.Manner == phonology.MannerStop &&
				(cur.Manner == phonology.MannerGlide || cur.Manner == phonology.MannerLiquid) {
				continue
			}
			t.Fatalf("seed %d: onset %s→%s violates sonority rise", seed, prev.Sound, cur.Sound)
		}
	}
}

func TestCodaSonorityFalls(t *testing.T) {
	m := englishModel(t)
	for seed := int64(0); seed < 500; seed++ {
		cc := &ClusterContext{
			Rand:      rand.New(rand.NewSource(seed)),
			Model:     m,
			Position:  phonology.Coda,
			MaxLength: 3,
			EndOfWord: true,
		}
		cluster := BuildCluster(cc)
		for i := 1; i < len(cluster); i++ {
			prev, cur := cluster[i-1], cluster[i]
			if m.Sonority.Of(cur) < m.Sonority.Of(prev) {
				continue
			}
			ok := (prev.Manner == phonology.MannerFricative && cur.Manner == phonology.MannerFricative) ||
				(prev.Manner == phonology.MannerStop && cur.Manner == phonology.MannerStop) ||
				(prev.Manner == phonology.MannerStop && (cur.Manner == phonology.MannerFricative || cur.Sibilant)) ||
				(prev.Sibilant && cur.Manner == phonology.MannerNasal)
			if !ok {
				t.Fatalf("seed %d: coda %s→%s violates sonority fall", seed, prev.Sound, cur.Sound)
			}
		}
	}
}

func TestClusterNeverInvalid(t *testing.T) {
	m := englishModel(t)
	for _, pos := range []phonology.Position{phonology.Onset, phonology.Coda} {
		for seed := int64(0); seed < 300; seed++ {
			cc := &ClusterContext{
				Rand:      rand.New(rand.NewSource(seed)),
				Model:     m,
				Position:  pos,
				MaxLength: 3,
			}
			cluster := BuildCluster(cc)
			if len(cluster) > 0 && m.ClusterInvalid(pos, cluster) {
				sounds := ""
				for _, p := range cluster {
					sounds += p.Sound + " "
				}
				t.Fatalf("seed %d: %s cluster %q matches an invalid pattern", seed, pos, sounds)
			}
		}
	}
}

func TestClusterRespectsExclude(t *testing.T) {
	m := englishModel(t)
	for seed := int64(0); seed < 200; seed++ {
		cc := &ClusterContext{
			Rand:      rand.New(rand.NewSource(seed)),
			Model:     m,
			Position:  phonology.Onset,
			MaxLength: 2,
			Exclude:   map[string]bool{"s": true, "t": true},
		}
		for _, p := range BuildCluster(cc) {
			if p.Sound == "s" || p.Sound == "t" {
				t.Fatalf("seed %d: excluded sound %q chosen", seed, p.Sound)
			}
		}
	}
}

func TestClusterMaxLength(t *testing.T) {
	m := englishModel(t)
	for seed := int64(0); seed < 200; seed++ {
		cc := &ClusterContext{
			Rand:      rand.New(rand.NewSource(seed)),
			Model:     m,
			Position:  phonology.Onset,
			MaxLength: 2,
		}
		if got := len(BuildCluster(cc)); got > 2 {
			t.Fatalf("seed %d: cluster length = %d, want <= 2", seed, got)
		}
	}
}

func TestWordPositionZeroWeightExcluded(t *testing.T) {
	m := englishModel(t)
	// ʒ carries a populated word-position struct with Start: 0, so it
	// may never open a word.
	for seed := int64(0); seed < 500; seed++ {
		cc := &ClusterContext{
			Rand:        rand.New(rand.NewSource(seed)),
			Model:       m,
			Position:    phonology.Onset,
			MaxLength:   1,
			StartOfWord: true,
		}
		for _, p := range BuildCluster(cc) {
			if p.Sound == "ʒ" {
				t.Fatalf("seed %d: ʒ chosen word-initially", seed)
			}
		}
	}
}
