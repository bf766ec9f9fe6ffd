package assignment

import (
	"strings"

	"github.com/assettrack/backend/internal/domain/shared"
)

// Accessory is an item handed out alongside an asset
type Accessory string

const (
	AccessoryCharger    Accessory = "Charger"
	AccessoryMouse      Accessory = "Mouse"
	AccessoryHeadphones Accessory = "Headphones"
	AccessoryMonitor    Accessory = "Monitor"
)

// legacyAccessories maps the uppercase enum accepted in accessoriesIssued
// onto the canonical label form.
var legacyAccessories = map[string]Accessory{
	"CHARGER":    AccessoryCharger,
	"MOUSE":      AccessoryMouse,
	"HEADPHONES": AccessoryHeadphones,
	"MONITOR":    AccessoryMonitor,
}

// IsValid reports whether a is a canonical accessory label
func (a Accessory) IsValid() bool {
	switch a {
	case AccessoryCharger, AccessoryMouse, AccessoryHeadphones, AccessoryMonitor:
		return true
	}
	return false
}

// ParseAccessory accepts only the canonical label form
func ParseAccessory(s string) (Accessory, error) {
	a := Accessory(strings.TrimSpace(s))
	if !a.IsValid() {
		return "", shared.NewFieldError("accessories", "Accessory must be one of Charger, Mouse, Headphones, Monitor")
	}
	return a, nil
}

// ParseLegacyAccessory accepts the uppercase enum form (CHARGER, MOUSE, ...)
func ParseLegacyAccessory(s string) (Accessory, error) {
	a, ok := legacyAccessories[strings.TrimSpace(s)]
	if !ok {
		return "", shared.NewFieldError("accessoriesIssued", "Accessory must be one of CHARGER, MOUSE, HEADPHONES, MONITOR")
	}
	return a, nil
}

// AccessorySet is an ordered set of accessories; insertion order is kept
type AccessorySet []Accessory

// NewAccessorySet builds a set, dropping duplicates
func NewAccessorySet(items ...Accessory) AccessorySet {
	out := make(AccessorySet, 0, len(items))
	for _, it := range items {
		if !out.Contains(it) {
			out = append(out, it)
		}
	}
	return out
}

// ParseAccessorySet parses canonical labels into a set
func ParseAccessorySet(labels []string) (AccessorySet, error) {
	items := make([]Accessory, 0, len(labels))
	for _, l := range labels {
		a, err := ParseAccessory(l)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return NewAccessorySet(items...), nil
}

// ParseLegacyAccessorySet parses the uppercase enum form into a set
func ParseLegacyAccessorySet(values []string) (AccessorySet, error) {
	items := make([]Accessory, 0, len(values))
	for _, v := range values {
		a, err := ParseLegacyAccessory(v)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return NewAccessorySet(items...), nil
}

// Contains reports whether a is in the set
func (s AccessorySet) Contains(a Accessory) bool {
	for _, it := range s {
		if it == a {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every element of s is in other
func (s AccessorySet) IsSubsetOf(other AccessorySet) bool {
	for _, it := range s {
		if !other.Contains(it) {
			return false
		}
	}
	return true
}

// Union returns s followed by the elements of other not already in s
func (s AccessorySet) Union(other AccessorySet) AccessorySet {
	out := make(AccessorySet, 0, len(s)+len(other))
	out = append(out, s...)
	for _, it := range other {
		if !out.Contains(it) {
			out = append(out, it)
		}
	}
	return out
}

// Difference returns the elements of s not in other, in s order
func (s AccessorySet) Difference(other AccessorySet) AccessorySet {
	out := make(AccessorySet, 0, len(s))
	for _, it := range s {
		if !other.Contains(it) {
			out = append(out, it)
		}
	}
	return out
}

// Strings returns the labels
func (s AccessorySet) Strings() []string {
	out := make([]string, len(s))
	for i, it := range s {
		out[i] = string(it)
	}
	return out
}
