package ir

func Truth(y *Node) bool {
	switch y.Type {
	case ObjectType:
		return len(y.Fields) != 0
	case ArrayType:
		return len(y.Values) != 0
	case StringType:
		return y.String != ""
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64 != 0
		}
		if y.Float64 != nil {
			return *y.Float64 != 0.0
		}
		return false
	case BoolType:
		return y.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
