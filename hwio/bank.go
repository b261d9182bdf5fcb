package hwio

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// boundReg pairs a tagged register field with its register-space offset.
// MustInitRegs neither builds nor returns these values.
type boundReg struct {
	offset uint16
	regPtr any
}

func parseTag(tag string) map[string]string {
	opts := make(map[string]string)
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if eq := strings.IndexByte(part, '='); eq >= 0 {
			opts[part[:eq]] = part[eq+1:]
		} else {
			opts[part] = ""
		}
	}
	return opts
}

// MustInitRegs walks bank's exported fields looking for an `hwio` struct
// tag, naming each Reg8 field and resolving its read/write/peek callbacks
// from same-named methods ("Read"+field, "Write"+field, "Peek"+field) on
// bank. The tag's offset is parsed and validated but not stored: placing
// the register in a Table is the caller's job (Table.MapReg8). It panics
// on a malformed tag or a missing callback method, since both are
// programmer errors caught at startup.
func MustInitRegs(bank any) {
	v := reflect.ValueOf(bank)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		panic(fmt.Errorf("hwio.MustInitRegs: bank must be a pointer to struct, got %T", bank))
	}
	sv := v.Elem()
	st := sv.Type()

	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		tag, ok := field.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		opts := parseTag(tag)
		offStr, ok := opts["offset"]
		if !ok {
			panic(fmt.Errorf("hwio.MustInitRegs: field %s missing offset in tag %q", field.Name, tag))
		}
		offset, err := strconv.ParseUint(offStr, 0, 16)
		if err != nil {
			panic(fmt.Errorf("hwio.MustInitRegs: field %s: bad offset %q: %w", field.Name, offStr, err))
		}
		_ = offset

		fv := sv.Field(i)
		reg, ok := fv.Addr().Interface().(*Reg8)
		if !ok {
			panic(fmt.Errorf("hwio.MustInitRegs: field %s must be hwio.Reg8, got %s", field.Name, field.Type))
		}
		reg.Name = field.Name

		if _, ok := opts["readonly"]; ok {
			reg.Flags |= ReadOnlyFlag
			reg.RoMask = 0xff
		}
		if _, ok := opts["writeonly"]; ok {
			reg.Flags |= WriteOnlyFlag
		}
		if rwmask, ok := opts["rwmask"]; ok {
			mask, err := strconv.ParseUint(rwmask, 0, 8)
			if err != nil {
				panic(fmt.Errorf("hwio.MustInitRegs: field %s: bad rwmask %q: %w", field.Name, rwmask, err))
			}
			reg.RoMask = ^uint8(mask)
		}
		if reset, ok := opts["reset"]; ok {
			val, err := strconv.ParseUint(reset, 0, 8)
			if err != nil {
				panic(fmt.Errorf("hwio.MustInitRegs: field %s: bad reset %q: %w", field.Name, reset, err))
			}
			reg.Value = uint8(val)
		}

		if _, ok := opts["rcb"]; ok {
			reg.ReadCb = mustFindCb1(v, "Read"+field.Name, field.Name)
		}
		if _, ok := opts["wcb"]; ok {
			reg.WriteCb = mustFindCb2(v, "Write"+field.Name, field.Name)
		}
		if name, ok := opts["pcb"]; ok {
			if name == "" {
				name = "Peek" + field.Name
			}
			reg.PeekCb = mustFindCb1(v, name, field.Name)
		}
	}
}

func mustFindCb1(bank reflect.Value, method, field string) func(uint8) uint8 {
	m := bank.MethodByName(method)
	if !m.IsValid() {
		panic(fmt.Errorf("hwio.MustInitRegs: field %s: missing method %s", field, method))
	}
	fn, ok := m.Interface().(func(uint8) uint8)
	if !ok {
		panic(fmt.Errorf("hwio.MustInitRegs: field %s: method %s has wrong signature", field, method))
	}
	return fn
}

func mustFindCb2(bank reflect.Value, method, field string) func(uint8, uint8) {
	m := bank.MethodByName(method)
	if !m.IsValid() {
		panic(fmt.Errorf("hwio.MustInitRegs: field %s: missing method %s", field, method))
	}
	fn, ok := m.Interface().(func(uint8, uint8))
	if !ok {
		panic(fmt.Errorf("hwio.MustInitRegs: field %s: method %s has wrong signature", field, method))
	}
	return fn
}
