package risk

import "fmt"

type Violation struct {
	Code string
	Msg  string
}

// Decision is the outcome of checking a sized trade against a Policy.
type Decision struct {
	Allowed    bool
	Violations []Violation
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate checks a sizing result against the policy. It assumes the result
// came from Calculate with the same inputs; it does not re-validate them.
func Evaluate(p Policy, in Inputs, res Result) Decision {
	d := Decision{Allowed: true}

	if in.RiskPercentage > p.MaxRiskPct {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("risk %.2f%% exceeds max %.2f%%", in.RiskPercentage, p.MaxRiskPct))
	} else if in.RiskPercentage > p.DefaultRiskPct {
		d.add("RISK_OVER_DEFAULT",
			fmt.Sprintf("risk %.2f%% exceeds default %.2f%% (requires override)",
				in.RiskPercentage, p.DefaultRiskPct))
	}

	if res.RiskRewardRatio < p.MinRR {
		d.add("RR_TOO_LOW",
			fmt.Sprintf("reward/risk %.2f below minimum %.2f", res.RiskRewardRatio, p.MinRR))
	}

	if p.MaxLotSize > 0 && res.LotSize > p.MaxLotSize {
		d.add("LOT_TOO_LARGE",
			fmt.Sprintf("lot size %.2f exceeds max %.2f", res.LotSize, p.MaxLotSize))
	}

	return d
}
