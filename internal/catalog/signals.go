package catalog

import "ChartGrader/internal/model"

// bullishSignals is listed in display order; results keep this order.
var bullishSignals = []model.Signal{
	// Volume
	{ID: "high-buy-vol", Name: "High Buying Volume", ShortName: "Buy Volume",
		Definition: "Green volume bars clearly above the recent average on the latest candles.",
		Points:     15, ConfluenceGroup: model.GroupVolume},
	{ID: "vol-surge-breakout", Name: "Volume Surge on Breakout", ShortName: "Breakout Volume",
		Definition: "The breakout candle prints the largest volume bar of the visible range.",
		Points:     12, ConfluenceGroup: model.GroupVolume},
	{ID: "rel-vol", Name: "High Relative Volume", ShortName: "Rel Vol",
		Definition: "Overall session volume is well above normal for the ticker.",
		Points:     10, ConfluenceGroup: model.GroupVolume},
	{ID: "light-vol-pullback", Name: "Light Volume Pullback", ShortName: "Quiet Pullback",
		Definition: "Red candles of the pullback come on noticeably smaller volume than the push up.",
		Points:     8, ConfluenceGroup: model.GroupVolume},

	// Momentum
	{ID: "macd-green", Name: "MACD Bullish (Green Histogram)", ShortName: "MACD Green",
		Definition: "MACD line above the signal line with a rising green histogram.",
		Points:     12, ConfluenceGroup: model.GroupMomentum},
	{ID: "macd-cross", Name: "MACD Bullish Crossover", ShortName: "MACD Cross",
		Definition: "MACD line crossed above the signal line within the last few candles.",
		Points:     10, ConfluenceGroup: model.GroupMomentum},
	{ID: "rsi-strength", Name: "RSI in Strength Zone", ShortName: "RSI 50-70",
		Definition: "RSI between 50 and 70 and pointing up.",
		Points:     8, ConfluenceGroup: model.GroupMomentum},
	{ID: "rsi-oversold-bounce", Name: "RSI Oversold Bounce", ShortName: "RSI Bounce",
		Definition: "RSI turns up after dipping below 30.",
		Points:     8, ConfluenceGroup: model.GroupMomentum},
	{ID: "bull-divergence", Name: "Bullish RSI Divergence", ShortName: "Bull Divergence",
		Definition: "Price makes a lower low while RSI makes a higher low.",
		Points:     8, ConfluenceGroup: model.GroupMomentum},

	// Trend
	{ID: "close-9ema", Name: "Close Above 9 EMA", ShortName: "Above 9 EMA",
		Definition: "The latest candle closed above the 9-period EMA.",
		Points:     10, ConfluenceGroup: model.GroupTrend},
	{ID: "above-20ema", Name: "Above 20 EMA", ShortName: "Above 20 EMA",
		Definition: "Price holds above the 20-period EMA.",
		Points:     8, ConfluenceGroup: model.GroupTrend},
	{ID: "above-vwap", Name: "Above VWAP", ShortName: "Above VWAP",
		Definition: "Price trades above the session VWAP line.",
		Points:     10, ConfluenceGroup: model.GroupTrend},
	{ID: "ema-stack", Name: "Bullish EMA Stack", ShortName: "EMA Stack",
		Definition: "9 EMA above 20 EMA above 50 EMA, all sloping up.",
		Points:     12, ConfluenceGroup: model.GroupTrend},
	{ID: "above-200ema", Name: "Above 200 EMA", ShortName: "Above 200",
		Definition: "Price sits above the 200-period moving average.",
		Points:     6, ConfluenceGroup: model.GroupTrend},

	// Structure
	{ID: "breakout", Name: "Breakout Above Resistance", ShortName: "Breakout",
		Definition: "A candle closed above a clearly tested resistance level.",
		Points:     15, ConfluenceGroup: model.GroupStructure},
	{ID: "higher-highs", Name: "Higher Highs and Higher Lows", ShortName: "HH/HL",
		Definition: "Swing highs and swing lows are both stepping up.",
		Points:     10, ConfluenceGroup: model.GroupStructure},
	{ID: "support-bounce", Name: "Bounce Off Support", ShortName: "Support Bounce",
		Definition: "Price tested a prior support level and reversed up from it.",
		Points:     10, ConfluenceGroup: model.GroupStructure},
	{ID: "new-hod", Name: "New High of Day", ShortName: "New HOD",
		Definition: "The latest candle made a new intraday high.",
		Points:     10, ConfluenceGroup: model.GroupStructure},
	{ID: "gap-and-hold", Name: "Gap Up and Hold", ShortName: "Gap Hold",
		Definition: "Price gapped up at the open and has held above the gap.",
		Points:     10, ConfluenceGroup: model.GroupStructure},
	{ID: "whole-dollar-break", Name: "Whole or Half Dollar Break", ShortName: "Dollar Break",
		Definition: "Price pushed through a whole or half dollar level.",
		Points:     6, ConfluenceGroup: model.GroupStructure},

	// Patterns
	{ID: "bull-flag", Name: "Bull Flag", ShortName: "Bull Flag",
		Definition: "Strong pole followed by a tight, downward-drifting consolidation.",
		Points:     12, ConfluenceGroup: model.GroupPattern},
	{ID: "first-pullback", Name: "First Pullback", ShortName: "1st Pullback",
		Definition: "First orderly pullback after a strong initial move up.",
		Points:     10, ConfluenceGroup: model.GroupPattern},
	{ID: "cup-and-handle", Name: "Cup and Handle", ShortName: "Cup & Handle",
		Definition: "Rounded base followed by a shallow handle near the prior high.",
		Points:     12, ConfluenceGroup: model.GroupPattern},
	{ID: "ascending-triangle", Name: "Ascending Triangle", ShortName: "Asc Triangle",
		Definition: "Flat resistance with rising lows pressing into it.",
		Points:     10, ConfluenceGroup: model.GroupPattern},
	{ID: "double-bottom", Name: "Double Bottom", ShortName: "Double Bottom",
		Definition: "Two distinct lows at about the same level with a bounce between.",
		Points:     10, ConfluenceGroup: model.GroupPattern},
	{ID: "micro-pullback", Name: "Micro Pullback", ShortName: "Micro PB",
		Definition: "One or two small red candles inside a strong move, then a new high.",
		Points:     8, ConfluenceGroup: model.GroupPattern},

	// Candles
	{ID: "bull-engulfing", Name: "Bullish Engulfing Candle", ShortName: "Engulfing",
		Definition: "A green candle whose body fully covers the prior red body.",
		Points:     10, ConfluenceGroup: model.GroupCandle},
	{ID: "hammer", Name: "Hammer Candle", ShortName: "Hammer",
		Definition: "Small body near the high with a long lower wick at support.",
		Points:     8, ConfluenceGroup: model.GroupCandle},
	{ID: "strong-close", Name: "Strong Close Near High", ShortName: "Strong Close",
		Definition: "The latest candle closed in the top quarter of its range.",
		Points:     6, ConfluenceGroup: model.GroupCandle},
}

var bearishSignals = []model.Signal{
	{ID: "high-sell-vol", Name: "High Selling Volume", ShortName: "Sell Volume",
		Definition: "Red volume bars clearly above the recent average.",
		Points:     15, ConfluenceGroup: model.GroupVolume, Disqualifying: true},
	{ID: "fading-volume", Name: "Fading Volume on Rally", ShortName: "Volume Fade",
		Definition: "Each push higher comes on less volume than the one before.",
		Points:     8, ConfluenceGroup: model.GroupVolume},
	{ID: "macd-red", Name: "MACD Bearish (Red Histogram)", ShortName: "MACD Red",
		Definition: "MACD line below the signal line with a growing red histogram.",
		Points:     12, ConfluenceGroup: model.GroupMomentum, Disqualifying: true},
	{ID: "rsi-overbought", Name: "RSI Overbought", ShortName: "RSI > 80",
		Definition: "RSI above 80 and rolling over.",
		Points:     6, ConfluenceGroup: model.GroupMomentum},
	{ID: "bear-divergence", Name: "Bearish RSI Divergence", ShortName: "Bear Divergence",
		Definition: "Price makes a higher high while RSI makes a lower high.",
		Points:     8, ConfluenceGroup: model.GroupMomentum},
	{ID: "below-9ema", Name: "Close Below 9 EMA", ShortName: "Below 9 EMA",
		Definition: "The latest candle closed below the 9-period EMA.",
		Points:     10, ConfluenceGroup: model.GroupTrend},
	{ID: "below-vwap", Name: "Below VWAP", ShortName: "Below VWAP",
		Definition: "Price trades below the session VWAP line.",
		Points:     10, ConfluenceGroup: model.GroupTrend, Disqualifying: true},
	{ID: "ema-bear-stack", Name: "Bearish EMA Stack", ShortName: "Bear Stack",
		Definition: "9 EMA below 20 EMA below 50 EMA, all sloping down.",
		Points:     12, ConfluenceGroup: model.GroupTrend, Disqualifying: true},
	{ID: "lower-highs", Name: "Lower Highs and Lower Lows", ShortName: "LH/LL",
		Definition: "Swing highs and swing lows are both stepping down.",
		Points:     10, ConfluenceGroup: model.GroupStructure},
	{ID: "resistance-reject", Name: "Rejected at Resistance", ShortName: "Rejection",
		Definition: "Price tagged resistance and was pushed back down.",
		Points:     10, ConfluenceGroup: model.GroupStructure},
	{ID: "failed-breakout", Name: "Failed Breakout", ShortName: "Failed BO",
		Definition: "Price broke resistance and then closed back below it.",
		Points:     12, ConfluenceGroup: model.GroupStructure, Disqualifying: true},
	{ID: "heavy-overhead", Name: "Heavy Overhead Resistance", ShortName: "Overhead",
		Definition: "A nearby prior high or gap fill sits just above current price.",
		Points:     8, ConfluenceGroup: model.GroupStructure},
	{ID: "topping-tail", Name: "Topping Tail", ShortName: "Topping Tail",
		Definition: "Long upper wick with a close near the low of the candle.",
		Points:     8, ConfluenceGroup: model.GroupCandle},
	{ID: "bear-engulfing", Name: "Bearish Engulfing Candle", ShortName: "Bear Engulfing",
		Definition: "A red candle whose body fully covers the prior green body.",
		Points:     10, ConfluenceGroup: model.GroupCandle, Disqualifying: true},
	{ID: "doji-indecision", Name: "Doji Indecision", ShortName: "Doji",
		Definition: "Open and close nearly equal after a run, signalling indecision.",
		Points:     4, ConfluenceGroup: model.GroupCandle},
}

var noGoConditions = []model.NoGoCondition{
	{ID: "extended-move", Name: "Extended Move",
		Description: "Price is far above its moving averages; entering now is chasing."},
	{ID: "low-liquidity", Name: "Low Liquidity",
		Description: "Volume is too thin to get in and out cleanly."},
	{ID: "wide-spread", Name: "Wide Spread",
		Description: "Gaps between candles suggest a wide bid-ask spread."},
	{ID: "parabolic-exhaustion", Name: "Parabolic Exhaustion",
		Description: "Vertical run-up with blow-off candles; reversal risk is high."},
	{ID: "halt-risk", Name: "Halt Risk",
		Description: "Price action is moving fast enough to trigger a volatility halt."},
	{ID: "major-downtrend", Name: "Major Downtrend",
		Description: "The higher timeframe trend is firmly down."},
	{ID: "choppy-action", Name: "Choppy Price Action",
		Description: "Erratic candles with large wicks in both directions and no clear direction."},
	{ID: "no-clear-stop", Name: "No Clear Stop Level",
		Description: "There is no nearby support to place a sensible stop under."},
	{ID: "news-pending", Name: "Pending News or Earnings",
		Description: "Scheduled earnings or news could gap the price either way."},
	{ID: "late-session", Name: "Late Session Fade",
		Description: "Late in the session with volume drying up."},
}
