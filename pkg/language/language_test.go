package language

import "testing"

func TestDetect_English(t *testing.T) {
	d := NewDetector()
	detection := d.Detect("The quick brown fox jumps over the lazy dog and runs away into the forest.")

	if !detection.English {
		t.Fatalf("Detect() = %+v, want English", detection)
	}
	if detection.Code != "en" {
		t.Errorf("Code = %q, want en", detection.Code)
	}
	if detection.Confidence <= 0 {
		t.Errorf("Confidence = %v, want > 0", detection.Confidence)
	}
}

func TestDetect_NonEnglish(t *testing.T) {
	d := NewDetector()
	detection := d.Detect("Der schnelle braune Fuchs springt über den faulen Hund und rennt in den Wald.")

	if detection.English {
		t.Fatalf("Detect() = %+v, want non-English", detection)
	}
	if detection.Code != "de" {
		t.Errorf("Code = %q, want de", detection.Code)
	}
}

func TestDetect_Empty(t *testing.T) {
	d := NewDetector()
	detection := d.Detect("")
	if detection.English {
		t.Errorf("Detect(empty) = %+v, want not English", detection)
	}
}
