// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package swapi

import (
	"fmt"
	"time"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// progID is the COM programmatic identifier of the SolidWorks application.
const progID = "SldWorks.Application"

// swOpenDocOptionsSilent suppresses all interactive dialogs during the
// parameterized open call (swOpenDocOptions_e).
const swOpenDocOptionsSilent = 1

// DefaultSettleDelay is how long a freshly spawned host is given to finish
// starting up before the first automation call.
const DefaultSettleDelay = 2 * time.Second

// ComConnector attaches to a running SolidWorks instance or spawns a new
// one. It implements Connector.
type ComConnector struct {
	// SettleDelay overrides DefaultSettleDelay when positive.
	SettleDelay time.Duration
}

// Connect acquires a host handle. Attach is tried first so a user's running
// session is reused; only when no instance is active is a new one spawned.
func (c *ComConnector) Connect() (Host, error) {
	// CoInitializeEx reports S_FALSE as an error when the apartment is
	// already initialized on this thread; treat both as usable.
	_ = ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)

	spawned := false
	unknown, err := oleutil.GetActiveObject(progID)
	if err != nil {
		unknown, err = oleutil.CreateObject(progID)
		if err != nil {
			ole.CoUninitialize()
			return nil, fmt.Errorf("%w: attach and spawn both failed: %v", ErrConnectionFailed, err)
		}
		spawned = true
	}

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	unknown.Release()
	if err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("%w: no IDispatch on host object: %v", ErrConnectionFailed, err)
	}

	if spawned {
		delay := c.SettleDelay
		if delay <= 0 {
			delay = DefaultSettleDelay
		}
		time.Sleep(delay)
	}

	return &comHost{app: app, spawned: spawned}, nil
}

type comHost struct {
	app     *ole.IDispatch
	spawned bool
}

func (h *comHost) Spawned() bool {
	return h.spawned
}

func (h *comHost) SetVisible(visible bool) error {
	_, err := oleutil.PutProperty(h.app, "Visible", visible)
	if err != nil {
		return fmt.Errorf("setting Visible=%v: %w", visible, err)
	}
	return nil
}

func (h *comHost) OpenDocument(path string, docType DocumentType) (Document, error) {
	result, err := oleutil.CallMethod(h.app, "OpenDoc", path, int(docType))
	if err != nil {
		return nil, fmt.Errorf("OpenDoc: %w", err)
	}
	return h.wrapModel(result)
}

func (h *comHost) OpenDocumentWithOptions(path string, docType DocumentType) (Document, error) {
	var errs, warnings ole.VARIANT
	ole.VariantInit(&errs)
	ole.VariantInit(&warnings)
	result, err := oleutil.CallMethod(h.app, "OpenDoc6",
		path, int(docType), swOpenDocOptionsSilent, "", &errs, &warnings)
	if err != nil {
		return nil, fmt.Errorf("OpenDoc6: %w", err)
	}
	return h.wrapModel(result)
}

func (h *comHost) wrapModel(result *ole.VARIANT) (Document, error) {
	model := result.ToIDispatch()
	if model == nil {
		return nil, ErrOpenFailed
	}
	return &comDocument{model: model}, nil
}

func (h *comHost) CloseDocument(title string) error {
	if _, err := oleutil.CallMethod(h.app, "CloseDoc", title); err != nil {
		return fmt.Errorf("CloseDoc %q: %w", title, err)
	}
	return nil
}

// Release drops the handle and the COM apartment reference. It never calls
// ExitApp: a spawned or attached host process is left running so any user
// session stays undisturbed.
func (h *comHost) Release() {
	if h.app != nil {
		h.app.Release()
		h.app = nil
	}
	ole.CoUninitialize()
}

type comDocument struct {
	model *ole.IDispatch
}

func (d *comDocument) Title() (string, error) {
	return d.scalarString("GetTitle")
}

func (d *comDocument) PathName() (string, error) {
	return d.scalarString("GetPathName")
}

// scalarString reads a member that different interface versions expose as
// either a method or a property, and normalizes the result to one string.
func (d *comDocument) scalarString(name string) (string, error) {
	result, err := oleutil.CallMethod(d.model, name)
	if err != nil {
		result, err = oleutil.GetProperty(d.model, name)
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
	}
	return variantString(result), nil
}

func (d *comDocument) CustomProperties() (PropertySet, error) {
	ext, err := oleutil.GetProperty(d.model, "Extension")
	if err != nil {
		return nil, fmt.Errorf("Extension: %w", err)
	}
	extDisp := ext.ToIDispatch()
	if extDisp == nil {
		return nil, fmt.Errorf("Extension: no dispatch interface")
	}

	// Empty configuration name selects the document-level property set.
	mgr, err := oleutil.GetProperty(extDisp, "CustomPropertyManager", "")
	if err != nil {
		mgr, err = oleutil.CallMethod(extDisp, "CustomPropertyManager", "")
		if err != nil {
			return nil, fmt.Errorf("CustomPropertyManager: %w", err)
		}
	}
	mgrDisp := mgr.ToIDispatch()
	if mgrDisp == nil {
		return nil, fmt.Errorf("CustomPropertyManager: no dispatch interface")
	}
	return &comPropertySet{mgr: mgrDisp}, nil
}

func (d *comDocument) SummaryField(field SummaryField) (string, error) {
	result, err := oleutil.GetProperty(d.model, "SummaryInfo", int(field))
	if err != nil {
		return "", fmt.Errorf("SummaryInfo(%d): %w", int(field), err)
	}
	return variantString(result), nil
}

func (d *comDocument) ActiveConfigurationName() (string, error) {
	mgr, err := oleutil.GetProperty(d.model, "ConfigurationManager")
	if err != nil {
		return "", fmt.Errorf("ConfigurationManager: %w", err)
	}
	mgrDisp := mgr.ToIDispatch()
	if mgrDisp == nil {
		return "", fmt.Errorf("ConfigurationManager: no dispatch interface")
	}

	active, err := oleutil.GetProperty(mgrDisp, "ActiveConfiguration")
	if err != nil {
		return "", fmt.Errorf("ActiveConfiguration: %w", err)
	}
	activeDisp := active.ToIDispatch()
	if activeDisp == nil {
		return "", fmt.Errorf("ActiveConfiguration: no dispatch interface")
	}
	defer activeDisp.Release()

	name, err := oleutil.GetProperty(activeDisp, "Name")
	if err != nil {
		return "", fmt.Errorf("ActiveConfiguration.Name: %w", err)
	}
	return variantString(name), nil
}

func (d *comDocument) ConfigurationNames() ([]string, error) {
	result, err := oleutil.CallMethod(d.model, "GetConfigurationNames")
	if err != nil {
		return nil, fmt.Errorf("GetConfigurationNames: %w", err)
	}
	if result.VT&ole.VT_ARRAY == 0 {
		return nil, nil
	}
	return result.ToArray().ToStringArray(), nil
}

func (d *comDocument) MaterialPropertyValues() ([]float64, error) {
	result, err := oleutil.GetProperty(d.model, "MaterialPropertyValues")
	if err != nil {
		return nil, fmt.Errorf("MaterialPropertyValues: %w", err)
	}
	return variantFloats(result), nil
}

func (d *comDocument) MassProperties() (*MassProperties, error) {
	ext, err := oleutil.GetProperty(d.model, "Extension")
	if err != nil {
		return nil, fmt.Errorf("Extension: %w", err)
	}
	extDisp := ext.ToIDispatch()
	if extDisp == nil {
		return nil, fmt.Errorf("Extension: no dispatch interface")
	}

	calc, err := oleutil.CallMethod(extDisp, "CreateMassProperty")
	if err != nil {
		return nil, fmt.Errorf("CreateMassProperty: %w", err)
	}
	calcDisp := calc.ToIDispatch()
	if calcDisp == nil {
		return nil, fmt.Errorf("CreateMassProperty: no calculator returned")
	}
	defer calcDisp.Release()

	props := &MassProperties{}
	readings := []struct {
		member string
		dst    *float64
	}{
		{"Mass", &props.Mass},
		{"Volume", &props.Volume},
		{"SurfaceArea", &props.SurfaceArea},
	}
	for _, r := range readings {
		v, err := oleutil.GetProperty(calcDisp, r.member)
		if err != nil {
			return nil, fmt.Errorf("mass property %s: %w", r.member, err)
		}
		*r.dst = variantFloat(v)
	}
	return props, nil
}

func (d *comDocument) Release() {
	if d.model != nil {
		d.model.Release()
		d.model = nil
	}
}

type comPropertySet struct {
	mgr *ole.IDispatch
}

// Names lists all property names. Depending on interface version the host
// returns either a bare string array or a one-element wrapper around it;
// both shapes are accepted.
func (p *comPropertySet) Names() ([]string, error) {
	result, err := oleutil.CallMethod(p.mgr, "GetNames")
	if err != nil {
		result, err = oleutil.GetProperty(p.mgr, "GetNames")
		if err != nil {
			return nil, fmt.Errorf("GetNames: %w", err)
		}
	}
	if result.VT&ole.VT_ARRAY == 0 {
		if s := variantString(result); s != "" {
			return []string{s}, nil
		}
		return nil, nil
	}

	values := result.ToArray().ToValueArray()
	names := make([]string, 0, len(values))
	for _, v := range values {
		switch val := v.(type) {
		case string:
			names = append(names, val)
		case []interface{}:
			for _, inner := range val {
				if s, ok := inner.(string); ok {
					names = append(names, s)
				}
			}
		}
	}
	return names, nil
}

// Get reads one property. Get5 yields status plus raw and evaluated values
// through by-reference variants; hosts predating it fall back to the plain
// single-value Get.
func (p *comPropertySet) Get(name string) (PropertyValue, error) {
	var raw, evaluated, wasResolved ole.VARIANT
	ole.VariantInit(&raw)
	ole.VariantInit(&evaluated)
	ole.VariantInit(&wasResolved)

	_, err := oleutil.CallMethod(p.mgr, "Get5", name, false, &raw, &evaluated, &wasResolved)
	if err == nil {
		return PropertyValue{
			Raw:       variantString(&raw),
			Evaluated: variantString(&evaluated),
		}, nil
	}

	result, err := oleutil.CallMethod(p.mgr, "Get", name)
	if err != nil {
		return PropertyValue{}, fmt.Errorf("property %q: %w", name, err)
	}
	return PropertyValue{Raw: variantString(result)}, nil
}

// variantString normalizes a variant to one string. Zero/one-element arrays
// collapse to their first element; nil and empty variants become "".
func variantString(v *ole.VARIANT) string {
	if v == nil {
		return ""
	}
	if v.VT&ole.VT_ARRAY != 0 {
		values := v.ToArray().ToValueArray()
		if len(values) == 0 {
			return ""
		}
		return fmt.Sprint(values[0])
	}
	switch val := v.Value().(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// variantFloat coerces a numeric variant to float64, tolerating the integer
// widths different interface versions return.
func variantFloat(v *ole.VARIANT) float64 {
	if v == nil {
		return 0
	}
	switch val := v.Value().(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int64:
		return float64(val)
	case int32:
		return float64(val)
	case int:
		return float64(val)
	default:
		return 0
	}
}

// variantFloats normalizes a numeric array variant to a float64 slice.
func variantFloats(v *ole.VARIANT) []float64 {
	if v == nil || v.VT&ole.VT_ARRAY == 0 {
		return nil
	}
	values := v.ToArray().ToValueArray()
	out := make([]float64, 0, len(values))
	for _, raw := range values {
		switch val := raw.(type) {
		case float64:
			out = append(out, val)
		case float32:
			out = append(out, float64(val))
		case int32:
			out = append(out, float64(val))
		case int64:
			out = append(out, float64(val))
		}
	}
	return out
}
