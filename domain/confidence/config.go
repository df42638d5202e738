package confidence

import "settei/domain/setting"

// DefaultGoalConfigs returns the canonical threshold bundles for the two
// standard groupings:
//
//   - "456": the setting is 4 or better
//   - "56":  the setting is 5 or better
//
// Sample floors, probability bands, difference bands, and the comment
// tables carry the tuning the tool shipped with. Interval, ratio, and
// strict-tier values are service defaults; all of them can be overridden
// from the environment at load time.
func DefaultGoalConfigs() []GoalConfig {
	return []GoalConfig{
		{
			Grouping: GoalGrouping{
				Code:  "456",
				Label: "設定456",
				Goal:  []setting.Key{setting.Setting4, setting.Setting5, setting.Setting6},
				Alt:   []setting.Key{setting.Setting1, setting.Setting2},
			},
			Samples:      SampleBounds{Warn: 120, Good: 220},
			Interval:     IntervalBounds{Warn: 3.0, Good: 1.5},
			GoalPct:      GoalBands{High: 75.0, Mid: 65.0, Low: 48.0, VeryLow: 25.0},
			DiffPct:      Band{High: 15.0, Mid: 7.0},
			Ratio:        Band{High: 3.0, Mid: 1.5},
			ClosenessPct: 2.0,
			Strict: StrictBounds{
				GoalPct:     85.0,
				DiffPct:     25.0,
				Ratio:       4.0,
				Sample:      400,
				IntervalPct: 1.2,
			},
			StarMinSamples: [6]int{0, 0, 0, 120, 220, 400},
			Comments: map[Tier]string{
				TierInsufficient: "サンプル不足です。まずはデータを集めましょう。",
				TierVeryLow:      "低設定の可能性が高いです。",
				TierLow:          "456の可能性はまだ低いです。",
				TierMid:          "456のチャンスがあります。",
				TierHigh:         "456濃厚です！",
				TierVeryHigh:     "456確信レベルです！",
			},
			Remarks: defaultRemarks(),
		},
		{
			Grouping: GoalGrouping{
				Code:  "56",
				Label: "設定56",
				Goal:  []setting.Key{setting.Setting5, setting.Setting6},
				Alt:   []setting.Key{setting.Setting1, setting.Setting2, setting.Setting4},
			},
			Samples:      SampleBounds{Warn: 160, Good: 240},
			Interval:     IntervalBounds{Warn: 2.6, Good: 1.3},
			GoalPct:      GoalBands{High: 58.0, Mid: 50.0, Low: 35.0, VeryLow: 18.0},
			DiffPct:      Band{High: 8.0, Mid: 4.0},
			Ratio:        Band{High: 2.2, Mid: 1.3},
			ClosenessPct: 1.5,
			Strict: StrictBounds{
				GoalPct:     70.0,
				DiffPct:     14.0,
				Ratio:       3.0,
				Sample:      480,
				IntervalPct: 1.0,
			},
			StarMinSamples: [6]int{0, 0, 0, 160, 240, 480},
			Comments: map[Tier]string{
				TierInsufficient: "サンプル不足です。",
				TierVeryLow:      "56は厳しそうです。",
				TierLow:          "56狙いは慎重に。",
				TierMid:          "56の可能性アリ。設定4との判別が必要。",
				TierHigh:         "56にかなり期待できます。",
				TierVeryHigh:     "56本命です！",
			},
			Remarks: defaultRemarks(),
		},
	}
}

func defaultRemarks() Remarks {
	return Remarks{
		ClearAdvantage: " 対抗グループを大きく引き離しています。",
		TooClose:       " 差が僅かで、どちらとも言えません。",
		Unfavorable:    " 現状は対抗グループ優勢です。",
		MoreSamples:    " あと%dGほど回すと、ひとつ上の信頼度で判断できます。",
	}
}
