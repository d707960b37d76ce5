/*
 *     Copyright 2023 The MAGSOLUTION Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package classifier

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
)

// NewAttributes returns the feature attributes and the class attribute.
// The class values are registered in a fixed order so that attributes
// rebuilt after loading an artifact compare equal to the trained ones.
func NewAttributes() ([]*base.FloatAttribute, *base.CategoricalAttribute) {
	attrs := make([]*base.FloatAttribute, len(Features))
	for i, name := range Features {
		attrs[i] = base.NewFloatAttribute(name)
	}

	class := base.NewCategoricalAttribute()
	class.SetName(ClassName)
	class.GetSysValFromString(ClassNormal)
	class.GetSysValFromString(ClassFailure)

	return attrs, class
}

// Dataset is a dense golearn grid with the feature layout of this package.
type Dataset struct {
	*base.DenseInstances

	attrSpecs []base.AttributeSpec
	classSpec base.AttributeSpec
	class     *base.CategoricalAttribute
}

// NewDataset allocates a dataset of size rows.
func NewDataset(size int) (*Dataset, error) {
	attrs, class := NewAttributes()
	return newDataset(attrs, class, size)
}

func newDataset(attrs []*base.FloatAttribute, class *base.CategoricalAttribute, size int) (*Dataset, error) {
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}

	classSpec := inst.AddAttribute(class)
	if err := inst.AddClassAttribute(class); err != nil {
		return nil, err
	}

	if err := inst.Extend(size); err != nil {
		return nil, err
	}

	return &Dataset{
		DenseInstances: inst,
		attrSpecs:      specs,
		classSpec:      classSpec,
		class:          class,
	}, nil
}

// SetRow writes the features and label of row.
func (d *Dataset) SetRow(row int, features []float64, label int) error {
	if err := checkFeatures(features); err != nil {
		return err
	}

	if label != 0 && label != 1 {
		return fmt.Errorf("invalid label %d", label)
	}

	for i, v := range features {
		d.DenseInstances.Set(d.attrSpecs[i], row, base.PackFloatToBytes(v))
	}

	d.DenseInstances.Set(d.classSpec, row, d.class.GetSysValFromString(fmt.Sprint(label)))
	return nil
}

// classOf converts a golearn class string into a label.
func classOf(s string) (int, error) {
	switch s {
	case ClassFailure:
		return 1, nil
	case ClassNormal:
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown class %q", s)
	}
}

// gridAttributes picks the feature attributes of grid in Features order and its class attribute.
func gridAttributes(grid base.FixedDataGrid) ([]*base.FloatAttribute, *base.CategoricalAttribute, error) {
	byName := make(map[string]*base.FloatAttribute)
	for _, a := range base.NonClassAttributes(grid) {
		if f, ok := a.(*base.FloatAttribute); ok {
			byName[f.GetName()] = f
		}
	}

	attrs := make([]*base.FloatAttribute, len(Features))
	for i, name := range Features {
		a, ok := byName[name]
		if !ok {
			return nil, nil, fmt.Errorf("missing feature attribute %s", name)
		}
		attrs[i] = a
	}

	classAttrs := grid.AllClassAttributes()
	if len(classAttrs) != 1 {
		return nil, nil, fmt.Errorf("only 1 class variable is permitted")
	}

	class, ok := classAttrs[0].(*base.CategoricalAttribute)
	if !ok {
		return nil, nil, fmt.Errorf("class attribute %s must be categorical", classAttrs[0].GetName())
	}

	return attrs, class, nil
}
