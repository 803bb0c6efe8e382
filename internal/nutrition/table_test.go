package nutrition

import "testing"

func TestDefaultTable(t *testing.T) {
	table := Default()
	if table.Len() < 100 {
		t.Fatalf("Len() = %d, want at least 100 entries", table.Len())
	}
	if len(table.Names()) != table.Len() {
		t.Errorf("Names() length %d != Len() %d", len(table.Names()), table.Len())
	}
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	_, err := NewTable([]Entry{
		{Name: "рис", Calories: 130},
		{Name: "рис", Calories: 131},
	})
	if err == nil {
		t.Fatal("NewTable() accepted duplicate names")
	}
}

func TestNewTableRejectsNegativeValues(t *testing.T) {
	_, err := NewTable([]Entry{{Name: "тест", Calories: -1}})
	if err == nil {
		t.Fatal("NewTable() accepted negative calories")
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	table := Default()
	if table.Get("Яблоко") == nil {
		t.Error("Get(\"Яблоко\") = nil, want entry")
	}
	if table.Get("нет такого продукта") != nil {
		t.Error("Get() returned entry for unknown name")
	}
}

func TestCaloriesForRoundsHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		calories float64
		grams    float64
		want     int
	}{
		{"exact portion", 165, 200, 330},
		{"default portion", 165, 100, 165},
		{"rounds up at half", 1, 150, 2},   // 1.5 -> 2
		{"rounds down below half", 1, 140, 1}, // 1.4 -> 1
		{"small drink", 2, 250, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entry{Name: "x", Calories: tt.calories}
			if got := e.CaloriesFor(tt.grams); got != tt.want {
				t.Errorf("CaloriesFor(%v) = %d, want %d", tt.grams, got, tt.want)
			}
		})
	}
}

func TestMacroScaling(t *testing.T) {
	e := &Entry{Name: "курица", Calories: 165, Protein: 31, Fat: 3.6}
	if got := e.ProteinFor(200); got != 62.0 {
		t.Errorf("ProteinFor(200) = %v, want 62.0", got)
	}
	if got := e.FatFor(50); got != 1.8 {
		t.Errorf("FatFor(50) = %v, want 1.8", got)
	}
}
