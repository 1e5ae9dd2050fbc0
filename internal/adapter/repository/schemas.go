package repository

import (
	"github.com/eslsoft/lingopick/internal/entity"
	"github.com/eslsoft/lingopick/pkg/filterexpr"
)

var languageSchema = filterexpr.Schema[*entity.LanguageProfile]{
	Filter: map[string]filterexpr.FilterField[*entity.LanguageProfile]{
		"id": {
			Kind:  filterexpr.KindString,
			Ops:   filterexpr.Ops(filterexpr.OpEQ, filterexpr.OpIN, filterexpr.OpSW),
			Value: func(lp *entity.LanguageProfile) any { return lp.ID },
		},
		"name": {
			Kind:  filterexpr.KindString,
			Ops:   filterexpr.Ops(filterexpr.OpEQ, filterexpr.OpSW),
			Value: func(lp *entity.LanguageProfile) any { return lp.Name },
		},
		"family": {
			Kind:  filterexpr.KindString,
			Ops:   filterexpr.Ops(filterexpr.OpEQ, filterexpr.OpIN),
			Value: func(lp *entity.LanguageProfile) any { return lp.Family },
		},
		"script": {
			Kind:  filterexpr.KindString,
			Ops:   filterexpr.Ops(filterexpr.OpEQ),
			Value: func(lp *entity.LanguageProfile) any { return lp.Script },
		},
		"tag": {
			Kind:  filterexpr.KindString,
			Ops:   filterexpr.Ops(filterexpr.OpEQ, filterexpr.OpIN),
			Value: func(lp *entity.LanguageProfile) any { return lp.Tags },
		},
		"region": {
			Kind:  filterexpr.KindString,
			Ops:   filterexpr.Ops(filterexpr.OpEQ, filterexpr.OpIN),
			Value: func(lp *entity.LanguageProfile) any { return lp.Regions },
		},
		"difficulty": {
			Kind:  filterexpr.KindNumber,
			Ops:   filterexpr.Ops(filterexpr.OpEQ, filterexpr.OpGTE, filterexpr.OpLTE),
			Value: func(lp *entity.LanguageProfile) any { return lp.BaseDifficulty },
		},
		"speakers": {
			Kind:  filterexpr.KindNumber,
			Ops:   filterexpr.Ops(filterexpr.OpGTE, filterexpr.OpLTE),
			Value: func(lp *entity.LanguageProfile) any { return float64(lp.Speakers.Total) },
		},
		"hours": {
			Kind:  filterexpr.KindNumber,
			Ops:   filterexpr.Ops(filterexpr.OpGTE, filterexpr.OpLTE),
			Value: func(lp *entity.LanguageProfile) any { return float64(lp.Hours.TotalHours) },
		},
	},
	Order: filterexpr.OrderSchema[*entity.LanguageProfile]{
		DefaultPrimary: "name",
		FallbackKey:    "id",
		Fields: map[string]filterexpr.OrderField[*entity.LanguageProfile]{
			"id":         {Key: func(lp *entity.LanguageProfile) any { return lp.ID }},
			"name":       {Key: func(lp *entity.LanguageProfile) any { return lp.Name }},
			"difficulty": {Key: func(lp *entity.LanguageProfile) any { return lp.BaseDifficulty }},
			"speakers":   {Key: func(lp *entity.LanguageProfile) any { return float64(lp.Speakers.Total) }},
		},
	},
}
