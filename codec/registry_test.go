package codec_test

import (
	"errors"
	"testing"

	"github.com/cocosip/go-progressive-codec/codec"
)

func TestTransformRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantName  string
	}{
		{
			name:      "Get DCT by name",
			key:       "dct",
			wantFound: true,
			wantName:  "dct",
		},
		{
			name:      "Get DWT by name",
			key:       "dwt",
			wantFound: true,
			wantName:  "dwt",
		},
		{
			name:      "Get non-existent transform",
			key:       "non-existent",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Errorf("Get(%q) unexpected error: %v", tt.key, err)
					return
				}
				if tr == nil {
					t.Errorf("Get(%q) returned nil transform", tt.key)
					return
				}
				if tr.Name() != tt.wantName {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, tr.Name(), tt.wantName)
				}
			} else {
				if err == nil {
					t.Errorf("Get(%q) expected error, got nil", tt.key)
				}
				if !errors.Is(err, codec.ErrTransformNotFound) {
					t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrTransformNotFound)
				}
			}
		})
	}
}

func TestListTransforms(t *testing.T) {
	transforms := codec.List()

	if len(transforms) < 2 {
		t.Fatalf("List() returned %d transforms, want at least 2", len(transforms))
	}

	foundDCT := false
	foundDWT := false
	for _, tr := range transforms {
		switch tr.Name() {
		case "dct":
			foundDCT = true
		case "dwt":
			foundDWT = true
		}
	}

	if !foundDCT {
		t.Error("List() did not include the DCT transform")
	}
	if !foundDWT {
		t.Error("List() did not include the DWT transform")
	}
}

func TestRegistryIsolation(t *testing.T) {
	r := codec.NewRegistry()
	if _, err := r.Get("dct"); !errors.Is(err, codec.ErrTransformNotFound) {
		t.Fatalf("new registry should be empty, got err=%v", err)
	}

	r.Register(codec.DWT{})
	r.Register(codec.DCT{})

	list := r.List()
	if len(list) != 2 || list[0].Name() != "dct" || list[1].Name() != "dwt" {
		t.Errorf("List() order = %v, want [dct dwt]", list)
	}
}

// TestRegistryTransformsRoundTrip gets each registered transform by name and
// runs it end to end at full budget.
func TestRegistryTransformsRoundTrip(t *testing.T) {
	const size = 16
	data := make([]byte, size*size*3)
	for i := range data {
		data[i] = byte((i * 7) % 256)
	}

	for _, name := range []string{"dct", "dwt"} {
		t.Run(name, func(t *testing.T) {
			tr, err := codec.Get(name)
			if err != nil {
				t.Fatalf("Failed to get %s transform: %v", name, err)
			}

			img, err := codec.NewImageFromPlanar(size, size, size*size, 8, data)
			if err != nil {
				t.Fatalf("NewImageFromPlanar failed: %v", err)
			}
			if err := img.Encode(tr); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if img.Domain() != codec.DomainFrequency {
				t.Fatalf("Domain after encode = %v, want frequency", img.Domain())
			}
			if err := img.Decode(tr); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			got := img.Planar()
			for i := range data {
				d := int(got[i]) - int(data[i])
				if d < -1 || d > 1 {
					t.Fatalf("sample %d = %d, want %d", i, got[i], data[i])
				}
			}
		})
	}
}
