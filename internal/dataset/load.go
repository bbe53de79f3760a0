package dataset

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/barangay-api/app/models"
)

//go:embed data/hierarchy.json data/flat.json
var dataFS embed.FS

// Load decodes the embedded PSGC artifacts and builds the indexes. Any
// violation of the dataset invariants (duplicate PSGC code, name in the
// hierarchy without a flat record, unknown level) fails the load, which
// aborts startup.
func Load() (*Dataset, error) {
	flatRaw, err := dataFS.ReadFile("data/flat.json")
	if err != nil {
		return nil, fmt.Errorf("read flat index: %w", err)
	}
	var flat []models.Area
	if err := json.Unmarshal(flatRaw, &flat); err != nil {
		return nil, fmt.Errorf("decode flat index: %w", err)
	}

	byID := make(map[string]*models.Area, len(flat))
	byName := make(map[string]bool, len(flat))
	for i := range flat {
		a := &flat[i]
		if a.Name == "" || a.PSGCID == "" {
			return nil, fmt.Errorf("flat record %d: empty name or psgc_id", i)
		}
		if !a.IsValidLevel() {
			return nil, fmt.Errorf("flat record %q: unknown level %q", a.PSGCID, a.Level)
		}
		if _, dup := byID[a.PSGCID]; dup {
			return nil, fmt.Errorf("duplicate psgc_id %q", a.PSGCID)
		}
		byID[a.PSGCID] = a
		byName[a.Name] = true
	}

	hierRaw, err := dataFS.ReadFile("data/hierarchy.json")
	if err != nil {
		return nil, fmt.Errorf("read hierarchy: %w", err)
	}
	regionKeys, regions, err := decodeHierarchy(hierRaw)
	if err != nil {
		return nil, fmt.Errorf("decode hierarchy: %w", err)
	}

	d := &Dataset{
		regionKeys: regionKeys,
		regions:    regions,
		flat:       flat,
		byID:       byID,
	}
	if err := d.checkNames(byName); err != nil {
		return nil, err
	}
	return d, nil
}

// checkNames verifies that every name appearing in the hierarchy has a
// corresponding flat-index record.
func (d *Dataset) checkNames(byName map[string]bool) error {
	for _, rk := range d.regionKeys {
		if !byName[rk] {
			return fmt.Errorf("region %q has no flat record", rk)
		}
		r := d.regions[rk]
		for _, pk := range r.provinceKeys {
			if !byName[pk] {
				return fmt.Errorf("province/HUC %q has no flat record", pk)
			}
			node := r.provinceNodes[pk]
			if brgys, direct := node.DirectBarangays(); direct {
				for _, b := range brgys {
					if !byName[b] {
						return fmt.Errorf("barangay %q has no flat record", b)
					}
				}
				continue
			}
			for _, mk := range node.childKeys {
				if !byName[mk] {
					return fmt.Errorf("municipality/city %q has no flat record", mk)
				}
				for _, b := range node.children[mk] {
					if !byName[b] {
						return fmt.Errorf("barangay %q has no flat record", b)
					}
				}
			}
		}
	}
	return nil
}

// decodeHierarchy walks the JSON with a token decoder so key order is
// preserved; encoding/json maps would lose the dataset ordering the list
// endpoints promise.
func decodeHierarchy(raw []byte) ([]string, map[string]*Region, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, nil, err
	}

	var keys []string
	regions := make(map[string]*Region)
	for dec.More() {
		name, err := nextString(dec)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := regions[name]; dup {
			return nil, nil, fmt.Errorf("duplicate region %q", name)
		}
		region, err := decodeRegion(dec, name)
		if err != nil {
			return nil, nil, fmt.Errorf("region %q: %w", name, err)
		}
		keys = append(keys, name)
		regions[name] = region
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, nil, err
	}
	return keys, regions, nil
}

func decodeRegion(dec *json.Decoder, name string) (*Region, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	r := &Region{
		name:          name,
		provinceNodes: make(map[string]*ProvinceNode),
	}
	for dec.More() {
		pname, err := nextString(dec)
		if err != nil {
			return nil, err
		}
		if _, dup := r.provinceNodes[pname]; dup {
			return nil, fmt.Errorf("duplicate province/HUC %q", pname)
		}
		node, err := decodeProvinceNode(dec, pname)
		if err != nil {
			return nil, fmt.Errorf("province/HUC %q: %w", pname, err)
		}
		r.provinceKeys = append(r.provinceKeys, pname)
		r.provinceNodes[pname] = node
	}
	return r, expectDelim(dec, '}')
}

// decodeProvinceNode resolves the irregular shape of the source data: a
// JSON object is a province with municipalities, a JSON array is a HUC
// carrying its barangays directly.
func decodeProvinceNode(dec *json.Decoder, name string) (*ProvinceNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("expected object or array, got %v", tok)
	}

	switch delim {
	case '{':
		node := &ProvinceNode{name: name, children: make(map[string][]string)}
		for dec.More() {
			mname, err := nextString(dec)
			if err != nil {
				return nil, err
			}
			if _, dup := node.children[mname]; dup {
				return nil, fmt.Errorf("duplicate municipality/city %q", mname)
			}
			var brgys []string
			if err := dec.Decode(&brgys); err != nil {
				return nil, fmt.Errorf("municipality/city %q: %w", mname, err)
			}
			node.childKeys = append(node.childKeys, mname)
			node.children[mname] = brgys
		}
		return node, expectDelim(dec, '}')
	case '[':
		node := &ProvinceNode{name: name}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			s, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("expected barangay name, got %v", tok)
			}
			node.barangays = append(node.barangays, s)
		}
		return node, expectDelim(dec, ']')
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

func nextString(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string key, got %v", tok)
	}
	return s, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
