// Interaction phase: every pair of living civilizations may fight,
// trade, or ignore each other. All math reads the snapshots taken after
// the internal phase; deltas accumulate and apply once per turn, so
// resolution order never leaks into the numbers.
package engine

import (
	"math"

	"github.com/emberfall/rival-realms/internal/civ"
	"github.com/emberfall/rival-realms/internal/entropy"
	"github.com/emberfall/rival-realms/internal/numeric"
)

// delta accumulates one civilization's pending interaction effects.
type delta struct {
	popLoss   float64
	resLoss   float64
	resBonus  float64
	techBonus float64
	fought    bool
}

func (s *Simulation) interactionPhase() {
	snaps := s.snapshots()
	deltas := make([]delta, len(s.civs))

	for i := 0; i < len(snaps); i++ {
		for j := i + 1; j < len(snaps); j++ {
			if !snaps[i].Alive || !snaps[j].Alive {
				continue
			}
			s.resolvePair(i, j, snaps, deltas)
		}
	}

	for i, c := range s.civs {
		if !c.Alive {
			continue
		}
		d := deltas[i]
		c.ApplyConflictLosses(d.popLoss, d.resLoss)
		c.ApplyCooperationBonus(d.resBonus, d.techBonus)

		// A war survivor needs more than a lone straggler to carry on.
		if d.fought && c.Population <= 1 {
			c.Die()
			s.emit(EventElimination, "%s has been eliminated in the fighting", c.Name)
		}
	}
}

// resolvePair decides what one pair does this turn. Open war comes first,
// then an opportunistic raid by a clearly stronger bully, then trade.
// Threshold jitter keeps outcomes near the cutoffs from being foregone.
func (s *Simulation) resolvePair(i, j int, snaps []civ.Snapshot, deltas []delta) {
	a, b := snaps[i], snaps[j]

	combinedAgg := a.Traits.Aggressiveness + b.Traits.Aggressiveness
	if combinedAgg > s.params.ConflictThreshold*entropy.Uniform(s.rng, 0.8, 1.2) {
		att, def := i, j
		if b.Traits.Aggressiveness > a.Traits.Aggressiveness {
			att, def = j, i
		} else if a.Traits.Aggressiveness == b.Traits.Aggressiveness && s.rng.Float64() < 0.5 {
			att, def = j, i
		}
		s.resolveConflict(att, def, snaps, deltas)
		return
	}

	if att := s.raider(i, j, snaps); att >= 0 {
		def := i
		if att == i {
			def = j
		}
		s.emit(EventConflict, "%s sees weakness and strikes", snaps[att].Name)
		s.resolveConflict(att, def, snaps, deltas)
		return
	}

	combinedCoop := a.Traits.Cooperation + b.Traits.Cooperation
	if combinedCoop > s.params.CooperationThreshold*entropy.Uniform(s.rng, 0.8, 1.2) {
		s.resolveCooperation(i, j, snaps, deltas)
	}
}

// raider returns the index of a civilization positioned for an
// opportunistic raid on the other, or -1. A raid needs a clear
// aggressiveness gap, a clear strength advantage, and a roll under the
// raider's appetite.
func (s *Simulation) raider(i, j int, snaps []civ.Snapshot) int {
	a, b := snaps[i], snaps[j]

	var strong, weak civ.Snapshot
	strongIdx := -1
	switch {
	case a.Strength > b.Strength && b.Strength > 0:
		strong, weak, strongIdx = a, b, i
	case b.Strength > a.Strength && a.Strength > 0:
		strong, weak, strongIdx = b, a, j
	default:
		return -1
	}

	if strong.Traits.Aggressiveness <= weak.Traits.Aggressiveness+s.params.RaidAggressionGap {
		return -1
	}
	if strong.Strength/weak.Strength <= s.params.RaidStrengthRatio {
		return -1
	}
	if s.rng.Float64() >= strong.Traits.Aggressiveness/civ.TraitMax {
		return -1
	}
	return strongIdx
}

// resolveConflict books both sides' combat losses into deltas. The
// attacker is whoever brought the war; effectiveness favors the defender
// when badly outmatched so wars stay costly for the aggressor too.
func (s *Simulation) resolveConflict(attIdx, defIdx int, snaps []civ.Snapshot, deltas []delta) {
	att, def := snaps[attIdx], snaps[defIdx]
	sAtt, sDef := att.Strength, def.Strength

	s.emit(EventConflict, "%s attacks %s (strength %.0f vs %.0f)", att.Name, def.Name, sAtt, sDef)
	s.conflicts++

	// Entrenchment: the defender's effective strength shrinks less than
	// the raw gap suggests.
	defEff := sDef / (1 + math.Max(0, sAtt/(sDef+1)-1))

	attMult := s.params.CombatLossBase * (1 + defEff/(sAtt+1)) * entropy.Uniform(s.rng, 0.7, 1.3)
	defMult := s.params.CombatLossBase * (1 + sAtt/(defEff+1)) * entropy.Uniform(s.rng, 0.7, 1.3)

	attPop, attRes := combatLosses(att, attMult, s.params.CombatMaxLossFraction)
	defPop, defRes := combatLosses(def, defMult, s.params.CombatMaxLossFraction)

	deltas[attIdx].popLoss += attPop
	deltas[attIdx].resLoss += attRes
	deltas[attIdx].fought = true
	deltas[defIdx].popLoss += defPop
	deltas[defIdx].resLoss += defRes
	deltas[defIdx].fought = true

	s.emit(EventConflict, "%s loses %.0f population and %.0f resources", att.Name, attPop, attRes)
	s.emit(EventConflict, "%s loses %.0f population and %.0f resources", def.Name, defPop, defRes)
}

// combatLosses turns a loss multiplier into casualties and destroyed
// resources for one side. Technology shields people and exposes wealth;
// neither loss may exceed the cap fraction of what is on hand.
func combatLosses(snap civ.Snapshot, mult, capFraction float64) (popLoss, resLoss float64) {
	popLoss = snap.Population * mult / (1 + snap.TechLevel*0.1)
	resLoss = snap.Resources * mult * (1 + snap.TechLevel*0.1)
	popLoss = numeric.Clamp(popLoss, 0, snap.Population*capFraction)
	resLoss = numeric.Clamp(resLoss, 0, snap.Resources*capFraction)
	return popLoss, resLoss
}

// resolveCooperation books mutual trade and knowledge-sharing bonuses.
// Each side's gains scale with the partner's cooperation and intelligence,
// so trading with an advanced society pays better.
func (s *Simulation) resolveCooperation(i, j int, snaps []civ.Snapshot, deltas []delta) {
	a, b := snaps[i], snaps[j]
	s.cooperations++

	aRes := a.Resources * s.params.CoopResourceBonus * (b.Traits.Cooperation / civ.TraitMax)
	aTech := s.params.CoopTechBonus * (b.Traits.Intelligence / 5)
	bRes := b.Resources * s.params.CoopResourceBonus * (a.Traits.Cooperation / civ.TraitMax)
	bTech := s.params.CoopTechBonus * (a.Traits.Intelligence / 5)

	deltas[i].resBonus += aRes
	deltas[i].techBonus += aTech
	deltas[j].resBonus += bRes
	deltas[j].techBonus += bTech

	s.emit(EventCooperation, "%s gains %.0f resources and %.3f tech trading with %s", a.Name, aRes, aTech, b.Name)
	s.emit(EventCooperation, "%s gains %.0f resources and %.3f tech trading with %s", b.Name, bRes, bTech, a.Name)
}
