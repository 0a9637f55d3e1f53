package chess

import (
	"testing"

	"github.com/lgbarn/chessgen-go/internal/testutil"
)

func TestMakeSquare(t *testing.T) {
	tests := []struct {
		name string
		file File
		rank Rank
		want Square
	}{
		{"a1", FileA, Rank1, A1},
		{"h1", FileH, Rank1, H1},
		{"a2", FileA, Rank2, A2},
		{"e4", FileE, Rank4, E4},
		{"d5", FileD, Rank5, D5},
		{"a8", FileA, Rank8, A8},
		{"h8", FileH, Rank8, H8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeSquare(tt.file, tt.rank)
			if got != tt.want {
				t.Errorf("MakeSquare(%v, %v) = %d; want %d", tt.file, tt.rank, got, tt.want)
			}
			if int(got) != int(tt.rank)*8+int(tt.file) {
				t.Errorf("MakeSquare(%v, %v) = %d; want rank*8+file", tt.file, tt.rank, got)
			}
		})
	}
}

func TestSquareConstants(t *testing.T) {
	testutil.AssertEqual(t, IndexFromSquare(A1), 0)
	testutil.AssertEqual(t, IndexFromSquare(H1), 7)
	testutil.AssertEqual(t, IndexFromSquare(A2), 8)
	testutil.AssertEqual(t, IndexFromSquare(E4), 28)
	testutil.AssertEqual(t, IndexFromSquare(A8), 56)
	testutil.AssertEqual(t, IndexFromSquare(H8), 63)
	testutil.AssertEqual(t, IndexFromSquare(SquareCount), 64)
}

func TestSquareFileRankRoundTrip(t *testing.T) {
	for sq := A1; sq < SquareCount; sq++ {
		if got := MakeSquare(sq.File(), sq.Rank()); got != sq {
			t.Errorf("MakeSquare(File(%d), Rank(%d)) = %d; want %d", sq, sq, got, sq)
		}
		if sq.File() != FileOf(sq) || sq.Rank() != RankOf(sq) {
			t.Errorf("FileOf/RankOf(%d) disagree with methods", sq)
		}
	}

	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			sq := MakeSquare(f, r)
			if sq.File() != f || sq.Rank() != r {
				t.Errorf("MakeSquare(%v, %v) = %v; File/Rank = %v, %v", f, r, sq, sq.File(), sq.Rank())
			}
		}
	}
}

func TestSquareIndexRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		if got := IndexFromSquare(SquareFromIndex(i)); got != i {
			t.Errorf("IndexFromSquare(SquareFromIndex(%d)) = %d", i, got)
		}
		if got := SquareFromIndex(i).Index(); got != i {
			t.Errorf("SquareFromIndex(%d).Index() = %d", i, got)
		}
	}
}

func TestIsValid(t *testing.T) {
	testutil.AssertTrue(t, A1.IsValid(), "A1")
	testutil.AssertTrue(t, H8.IsValid(), "H8")
	testutil.AssertFalse(t, SquareCount.IsValid(), "SquareCount")
	testutil.AssertFalse(t, Square(200).IsValid(), "Square(200)")

	testutil.AssertTrue(t, FileH.IsValid(), "FileH")
	testutil.AssertFalse(t, NoFile.IsValid(), "NoFile")
	testutil.AssertTrue(t, Rank8.IsValid(), "Rank8")
	testutil.AssertFalse(t, NoRank.IsValid(), "NoRank")

	testutil.AssertTrue(t, King.IsValid(), "King")
	testutil.AssertFalse(t, NoPiece.IsValid(), "NoPiece")
	testutil.AssertTrue(t, Black.IsValid(), "Black")
	testutil.AssertFalse(t, ColorCount.IsValid(), "ColorCount")
}

func TestSentinels(t *testing.T) {
	testutil.AssertEqual(t, int(FileCount), 8)
	testutil.AssertEqual(t, NoFile, FileCount)
	testutil.AssertEqual(t, int(RankCount), 8)
	testutil.AssertEqual(t, NoRank, RankCount)
	testutil.AssertEqual(t, int(DirectionCount), 8)
	testutil.AssertEqual(t, int(PieceCount), 6)
	testutil.AssertEqual(t, NoPiece, PieceCount)
	testutil.AssertEqual(t, NoSquare, SquareCount)
}

func TestSquareIteration(t *testing.T) {
	count := 0
	for sq := A1; sq != SquareCount; sq = sq.Next() {
		if sq.Index() != count {
			t.Fatalf("square %d visited at step %d", sq, count)
		}
		count++
	}
	testutil.AssertEqual(t, count, 64)

	count = 0
	for sq := SquareCount; sq != A1; {
		sq = sq.Prev()
		count++
	}
	testutil.AssertEqual(t, count, 64)
}

func TestFileRankStep(t *testing.T) {
	var files []File
	for f := FileA; ; f = f.Next() {
		files = append(files, f)
		if f == FileH {
			break
		}
	}
	testutil.AssertEqual(t, files, []File{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH})

	var ranks []Rank
	for r := Rank8; ; r = r.Prev() {
		ranks = append(ranks, r)
		if r == Rank1 {
			break
		}
	}
	testutil.AssertEqual(t, ranks, []Rank{Rank8, Rank7, Rank6, Rank5, Rank4, Rank3, Rank2, Rank1})

	testutil.AssertEqual(t, FileH.Prev(), FileG)
	testutil.AssertEqual(t, NoFile.Prev(), FileH)
	testutil.AssertEqual(t, NoRank.Prev(), Rank8)
	testutil.AssertEqual(t, Rank1.Next(), Rank2)
}

func TestFileRankReverseFromSentinel(t *testing.T) {
	var files []File
	for f := NoFile; f != FileA; {
		f = f.Prev()
		files = append(files, f)
	}
	testutil.AssertEqual(t, files, []File{FileH, FileG, FileF, FileE, FileD, FileC, FileB, FileA})

	count := 0
	for r := NoRank; r != Rank1; {
		r = r.Prev()
		count++
	}
	testutil.AssertEqual(t, count, 8)
}

func TestMirror(t *testing.T) {
	tests := []struct {
		sq   Square
		want Square
	}{
		{A1, A8},
		{E2, E7},
		{H8, H1},
		{D4, D5},
	}
	for _, tt := range tests {
		if got := tt.sq.Mirror(); got != tt.want {
			t.Errorf("%v.Mirror() = %v; want %v", tt.sq, got, tt.want)
		}
	}
	for sq := A1; sq < SquareCount; sq++ {
		if sq.Mirror().Mirror() != sq {
			t.Errorf("%v.Mirror().Mirror() != %v", sq, sq)
		}
	}
}

func TestRelativeRank(t *testing.T) {
	tests := []struct {
		sq    Square
		color Color
		want  Rank
	}{
		{E2, White, Rank2},
		{E2, Black, Rank7},
		{A7, Black, Rank2},
		{H8, White, Rank8},
		{H8, Black, Rank1},
	}
	for _, tt := range tests {
		if got := tt.sq.RelativeRank(tt.color); got != tt.want {
			t.Errorf("%v.RelativeRank(%v) = %v; want %v", tt.sq, tt.color, got, tt.want)
		}
	}
}

func TestDirections(t *testing.T) {
	for i, d := range Directions {
		if d.Index() != i {
			t.Errorf("Directions[%d] = %v; index %d", i, d, d.Index())
		}
	}
	testutil.AssertEqual(t, NorthEast.String(), "NE")
	testutil.AssertEqual(t, SouthWest.String(), "SW")
	testutil.AssertEqual(t, DirectionCount.String(), "?")
}
