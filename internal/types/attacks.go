/*
 * lodestar - UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2026 Karl Jallback
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Magic holds the perfect-hash data needed to look up a sliding piece's
// attack set for one square: occ := (occupied & Mask) * Magic >> Shift
// indexes directly into Attacks.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

var (
	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic

	rookDirections   = [4]Direction{North, East, South, West}
	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

	pseudoAttacks    [PtLength][SqLength]Bitboard
	pawnAttacks      [2][SqLength]Bitboard
	squareDistance   [SqLength][SqLength]uint8
	intermediateBb   [SqLength][SqLength]Bitboard
	lineBb           [SqLength][SqLength]Bitboard
	passedPawnMaskBb [2][SqLength]Bitboard
)

func init() {
	initBitboards()
	initDistance()
	initLeaperAttacks()
	initMagicsFor(&rookMagics, &rookDirections)
	initMagicsFor(&bishopMagics, &bishopDirections)
	initSliderPseudoAttacks()
	initLinesAndIntermediates()
	initPassedPawnMasks()
}

func initDistance() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			fd := absInt(int(s1.FileOf()) - int(s2.FileOf()))
			rd := absInt(int(s1.RankOf()) - int(s2.RankOf()))
			if fd > rd {
				squareDistance[s1][s2] = uint8(fd)
			} else {
				squareDistance[s1][s2] = uint8(rd)
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SquareDistance returns the Chebyshev (king-move) distance between two squares.
func SquareDistance(s1, s2 Square) int {
	return int(squareDistance[s1][s2])
}

func initLeaperAttacks() {
	knightSteps := [8]Direction{17, 15, 10, 6, -6, -10, -15, -17}
	for sq := SqA1; sq <= SqH8; sq++ {
		var king, knight Bitboard
		for _, d := range Directions {
			to := sq.To(d)
			if to.IsValid() && SquareDistance(sq, to) == 1 {
				king.PushSquare(to)
			}
		}
		for _, d := range knightSteps {
			n := int(sq) + int(d)
			if n < 0 || n >= 64 {
				continue
			}
			to := Square(n)
			if SquareDistance(sq, to) <= 2 && absInt(int(sq.FileOf())-int(to.FileOf())) <= 2 {
				knight.PushSquare(to)
			}
		}
		pseudoAttacks[King][sq] = king
		pseudoAttacks[Knight][sq] = knight

		bb := squareBb[sq]
		pawnAttacks[White][sq] = ShiftBitboard(bb, Northeast) | ShiftBitboard(bb, Northwest)
		pawnAttacks[Black][sq] = ShiftBitboard(bb, Southeast) | ShiftBitboard(bb, Southwest)
	}
}

func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		s := sq
		for {
			to := s.To(d)
			if !to.IsValid() {
				break
			}
			s = to
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// initMagicsFor computes magic numbers and attack tables for all 64 squares
// of one slider (rook or bishop), verifying at init time that every magic
// produces collision-free indexing into its square's attack table.
func initMagicsFor(magics *[SqLength]Magic, directions *[4]Direction) {
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ RankBb(sq.RankOf())) | ((FileABb | FileHBb) &^ FileBb(sq.FileOf()))

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		size := 0
		b := Bitboard(0)
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}
		m.Attacks = make([]Bitboard, size)

		rng := newPrnG(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func initSliderPseudoAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		pseudoAttacks[Rook][sq] = rookMagics[sq].Attacks[rookMagics[sq].index(BbZero)]
		pseudoAttacks[Bishop][sq] = bishopMagics[sq].Attacks[bishopMagics[sq].index(BbZero)]
		pseudoAttacks[Queen][sq] = pseudoAttacks[Rook][sq] | pseudoAttacks[Bishop][sq]
	}
}

// initLinesAndIntermediates precomputes, for every square pair lying on a
// common rank, file or diagonal, the squares strictly between them
// (intermediateBb) and the full infinite line through both (lineBb).
func initLinesAndIntermediates() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for _, pt := range [2]PieceType{Bishop, Rook} {
			for s2 := SqA1; s2 <= SqH8; s2++ {
				if pseudoAttacks[pt][s1].Has(s2) {
					lineBb[s1][s2] = (pseudoAttacks[pt][s1] & pseudoAttacks[pt][s2]) | squareBb[s1] | squareBb[s2]
					attacksFromS2 := slidingAttackThrough(pt, s2, squareBb[s1])
					intermediateBb[s1][s2] = slidingAttackThrough(pt, s1, squareBb[s2]) & attacksFromS2
				}
			}
		}
	}
}

func slidingAttackThrough(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	if pt == Rook {
		return slidingAttack(&rookDirections, sq, occupied)
	}
	return slidingAttack(&bishopDirections, sq, occupied)
}

func initPassedPawnMasks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := sq.FileOf()
		var files Bitboard
		files = FileBb(f)
		if f > FileA {
			files |= FileBb(f - 1)
		}
		if f < FileH {
			files |= FileBb(f + 1)
		}

		var ahead Bitboard
		for r := sq.RankOf() + 1; r <= Rank8; r++ {
			ahead |= RankBb(r)
		}
		passedPawnMaskBb[White][sq] = files & ahead

		ahead = BbZero
		for r := int(sq.RankOf()) - 1; r >= int(Rank1); r-- {
			ahead |= RankBb(Rank(r))
		}
		passedPawnMaskBb[Black][sq] = files & ahead
	}
}

// PawnAttacks returns the squares a pawn of color c standing on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// LeaperAttacks returns the pseudo-attacks of a non-sliding piece type
// (King or Knight) from sq.
func LeaperAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetAttacksBb returns the attack set of a piece of type pt standing on sq
// given the board's full occupancy. Sliding pieces consult their magic
// tables; leapers and pawns (color encoded by caller via PawnAttacks) use
// the precomputed tables.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Queen:
		return GetAttacksBb(Bishop, sq, occupied) | GetAttacksBb(Rook, sq, occupied)
	default:
		return pseudoAttacks[pt][sq]
	}
}

// Intermediate returns the squares strictly between s1 and s2 if they share
// a rank, file or diagonal, or BbZero otherwise.
func Intermediate(s1, s2 Square) Bitboard {
	return intermediateBb[s1][s2]
}

// Line returns the full board-spanning line through s1 and s2 if they share
// a rank, file or diagonal, or BbZero otherwise. Used to detect pins: a
// pinned piece may only move along Line(kingSquare, pinnerSquare).
func Line(s1, s2 Square) Bitboard {
	return lineBb[s1][s2]
}

// PassedPawnMask returns the file-triple, ahead-of-rank mask used to test
// whether an enemy pawn can still stop a passed pawn of color c on sq.
func PassedPawnMask(c Color, sq Square) Bitboard {
	return passedPawnMaskBb[c][sq]
}

// PrnG is a xorshift64star pseudo-random generator, used only to find magic
// numbers at startup; not used anywhere performance-sensitive.
type PrnG struct {
	s uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces a random value with roughly 1/8th of its bits set,
// which converges to a valid magic number faster than a uniform draw.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
