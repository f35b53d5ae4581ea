package main

// Equals compares expression trees structurally. Lambdas compare by
// parameter names and body; environments don't enter into it since a
// Lambda carries none.
func Equals(v1, v2 Expr) bool {
	list1, isList1 := v1.(List)
	list2, isList2 := v2.(List)
	if isList1 && isList2 {
		return listEquals(list1, list2)
	}

	lam1, isLam1 := v1.(Lambda)
	lam2, isLam2 := v2.(Lambda)
	if isLam1 && isLam2 {
		return lambdaEquals(lam1, lam2)
	}

	return v1 == v2
}

func listEquals(list1, list2 List) bool {
	if len(list1) != len(list2) {
		return false
	}
	for i := range list1 {
		if !Equals(list1[i], list2[i]) {
			return false
		}
	}
	return true
}

func lambdaEquals(lam1, lam2 Lambda) bool {
	if len(lam1.Params) != len(lam2.Params) {
		return false
	}
	for i := range lam1.Params {
		if lam1.Params[i] != lam2.Params[i] {
			return false
		}
	}
	return listEquals(lam1.Body, lam2.Body)
}
