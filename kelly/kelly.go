// Package kelly implements a running Kelly-fraction sizing counter: record
// wins and losses as they occur, then ask for the Kelly fraction at any
// point.
package kelly

import (
	"github.com/halvorsen-quant/adfstat/adferrors"
)

const op = "kelly"

// Sizer accumulates win/loss statistics and reports the Kelly fraction.
type Sizer struct {
	winSum, lossSum float64
	wins, losses    int
}

// RecordWin records a winning trade with the given (strictly positive) profit.
func (s *Sizer) RecordWin(profit float64) error {
	if profit <= 0 {
		return adferrors.New(adferrors.InvalidArgument, op+".RecordWin", "profit", profit)
	}
	s.wins++
	s.winSum += profit
	return nil
}

// RecordLoss records a losing trade with the given (strictly positive) loss
// magnitude.
func (s *Sizer) RecordLoss(loss float64) error {
	if loss <= 0 {
		return adferrors.New(adferrors.InvalidArgument, op+".RecordLoss", "loss", loss)
	}
	s.losses++
	s.lossSum += loss
	return nil
}

// Fraction returns the Kelly fraction W - (1-W)/R, where W is the win rate
// and R is the ratio of the average win to the average loss. It returns 0
// when there isn't at least one win and one loss recorded yet.
func (s *Sizer) Fraction() float64 {
	total := s.wins + s.losses
	if total == 0 || s.wins == 0 || s.losses == 0 {
		return 0.0
	}

	w := float64(s.wins) / float64(total)
	avgWin := s.winSum / float64(s.wins)
	avgLoss := s.lossSum / float64(s.losses)
	r := avgWin / avgLoss

	return w - (1.0-w)/r
}
