package main

import (
	"fmt"

	"github.com/knetic/govaluate"
	"github.com/mitchellh/mapstructure"

	"github.com/Raimguzhinov/bmpcodec/bmp"
)

// exprFunctions возвращает функции, доступные в выражениях check.
func exprFunctions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"RowStride": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("RowStride ожидает 2 аргумента (width, bitCount)")
			}
			width, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("RowStride: width должен быть числом")
			}
			bitCount, ok := args[1].(float64)
			if !ok {
				return nil, fmt.Errorf("RowStride: bitCount должен быть числом")
			}
			return float64(bmp.RowStride(int(width), int(bitCount))), nil
		},
	}
}

// exprParams раскладывает headerInfo в карту параметров. Все числа
// приводятся к float64, с другими числовыми типами govaluate не сравнивает.
func exprParams(info headerInfo) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := mapstructure.Decode(info, &raw); err != nil {
		return nil, fmt.Errorf("не удалось разложить заголовки: %w", err)
	}

	params := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		switch n := v.(type) {
		case int:
			params[k] = float64(n)
		case int32:
			params[k] = float64(n)
		case uint16:
			params[k] = float64(n)
		case uint32:
			params[k] = float64(n)
		default:
			params[k] = v
		}
	}
	return params, nil
}

func evaluate(expression string, info headerInfo) (bool, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(expression, exprFunctions())
	if err != nil {
		return false, fmt.Errorf("ошибка разбора выражения %q: %w", expression, err)
	}
	params, err := exprParams(info)
	if err != nil {
		return false, err
	}

	result, err := expr.Evaluate(params)
	if err != nil {
		return false, fmt.Errorf("ошибка вычисления выражения %q: %w", expression, err)
	}
	ok, isBool := result.(bool)
	if !isBool {
		return false, fmt.Errorf("выражение %q должно возвращать логическое значение, получено %v", expression, result)
	}
	return ok, nil
}
