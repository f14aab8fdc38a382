package indicator

import "time"

// Reference data sets with published results for each indicator.

var fixtureDate = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time { return fixtureDate.AddDate(0, 0, n) }

var adlPrices = []Price{
	{High: 62.34, Low: 61.37, Close: 62.15, Volume: 7849},
	{High: 62.05, Low: 60.69, Close: 60.81, Volume: 11692},
	{High: 62.27, Low: 60.1, Close: 60.45, Volume: 10575},
	{High: 60.79, Low: 58.61, Close: 59.18, Volume: 13059},
	{High: 59.93, Low: 58.71, Close: 59.24, Volume: 20734},
	{High: 61.75, Low: 59.86, Close: 60.2, Volume: 29630},
	{High: 60, Low: 57.97, Close: 58.48, Volume: 17705},
	{High: 59, Low: 58.02, Close: 58.24, Volume: 7259},
	{High: 59.07, Low: 57.48, Close: 58.69, Volume: 10475},
	{High: 59.22, Low: 58.3, Close: 58.65, Volume: 5204},
	{High: 58.75, Low: 57.83, Close: 58.47, Volume: 3423},
	{High: 58.65, Low: 57.86, Close: 58.02, Volume: 3962},
	{High: 58.47, Low: 57.91, Close: 58.17, Volume: 4096},
	{High: 58.25, Low: 57.83, Close: 58.07, Volume: 3766},
	{High: 58.35, Low: 57.53, Close: 58.13, Volume: 4239},
	{High: 59.86, Low: 58.58, Close: 58.94, Volume: 8040},
	{High: 59.53, Low: 58.3, Close: 59.1, Volume: 6957},
	{High: 62.1, Low: 58.53, Close: 61.92, Volume: 18172},
	{High: 62.16, Low: 59.8, Close: 61.37, Volume: 22226},
	{High: 62.67, Low: 60.93, Close: 61.68, Volume: 14614},
	{High: 62.38, Low: 60.15, Close: 62.09, Volume: 12320},
	{High: 63.73, Low: 62.26, Close: 62.89, Volume: 15008},
	{High: 63.85, Low: 63, Close: 63.53, Volume: 8880},
	{High: 66.15, Low: 63.58, Close: 64.01, Volume: 22694},
	{High: 65.34, Low: 64.07, Close: 64.77, Volume: 10192},
	{High: 66.48, Low: 65.2, Close: 65.22, Volume: 10074},
	{High: 65.23, Low: 63.21, Close: 63.28, Volume: 9412},
	{High: 63.4, Low: 61.88, Close: 62.4, Volume: 10392},
	{High: 63.18, Low: 61.11, Close: 61.55, Volume: 8927},
	{High: 62.7, Low: 61.25, Close: 62.69, Volume: 7460},
}

var aroonCloses = []float64{
	54.09, 59.9, 58.2, 59.76, 52.35, 52.82, 56.94, 57.47, 55.26, 57.51,
	54.8, 51.47, 56.16, 58.34, 56.02, 60.22, 56.75, 57.38, 50.23, 57.06,
	61.51, 63.69, 66.22, 69.16, 70.73, 67.79, 68.82, 62.38, 67.59, 67.59,
}

var atrPrices = []Price{
	{High: 48.7, Low: 47.79, Close: 48.16},
	{High: 48.72, Low: 48.14, Close: 48.61},
	{High: 48.9, Low: 48.39, Close: 48.75},
	{High: 48.87, Low: 48.37, Close: 48.63},
	{High: 48.82, Low: 48.24, Close: 48.74},
	{High: 49.05, Low: 48.64, Close: 49.03},
	{High: 49.2, Low: 48.94, Close: 49.07},
	{High: 49.35, Low: 48.86, Close: 49.32},
	{High: 49.92, Low: 49.5, Close: 49.91},
	{High: 50.19, Low: 49.87, Close: 50.13},
	{High: 50.12, Low: 49.2, Close: 49.53},
	{High: 49.66, Low: 48.9, Close: 49.5},
	{High: 49.88, Low: 49.43, Close: 49.75},
	{High: 50.19, Low: 49.73, Close: 50.03},
	{High: 50.36, Low: 49.26, Close: 50.31},
	{High: 50.57, Low: 50.09, Close: 50.52},
	{High: 50.65, Low: 50.3, Close: 50.41},
	{High: 50.43, Low: 49.21, Close: 49.34},
	{High: 49.63, Low: 48.98, Close: 49.37},
	{High: 50.33, Low: 49.61, Close: 50.23},
	{High: 50.29, Low: 49.2, Close: 49.24},
	{High: 50.17, Low: 49.43, Close: 49.93},
	{High: 49.32, Low: 48.08, Close: 48.43},
	{High: 48.5, Low: 47.64, Close: 48.18},
	{High: 48.32, Low: 41.55, Close: 46.57},
	{High: 46.8, Low: 44.28, Close: 45.41},
	{High: 47.8, Low: 47.31, Close: 47.77},
	{High: 48.39, Low: 47.2, Close: 47.72},
	{High: 48.66, Low: 47.9, Close: 48.62},
	{High: 48.79, Low: 47.73, Close: 47.85},
}

var bollingerCloses = []float64{
	86.16, 89.09, 88.78, 90.32, 89.07, 91.15, 89.44, 89.18, 86.93, 87.68,
	86.96, 89.43, 89.32, 88.72, 87.45, 87.26, 89.5, 87.9, 89.13, 90.7,
	92.9, 92.98, 91.8, 92.66, 92.68, 92.3, 92.77, 92.54, 92.95, 93.2,
	91.07, 89.83, 89.74, 90.4, 90.74, 88.02, 88.09, 88.84, 90.78, 90.54,
	91.39, 90.65,
}

var correlationFirstCloses = []float64{
	21.4, 21.71, 21.2, 21.34, 21.49, 21.39, 22.16, 22.53, 22.44, 22.75,
	23.23, 23.09, 22.85, 22.45, 22.48, 22.27, 22.37, 22.28, 23.06, 22.99,
}

var correlationSecondCloses = []float64{
	54.83, 55.34, 54.38, 55.25, 56.07, 56.3, 57.05, 57.91, 58.2, 58.39,
	59.19, 59.03, 57.96, 57.52, 57.76, 57.09, 57.85, 57.54, 58.85, 58.6,
}

var emvPrices = []Price{
	{High: 63.74, Low: 62.63, Volume: 32178836},
	{High: 64.51, Low: 63.85, Volume: 36461672},
	{High: 64.57, Low: 63.81, Volume: 51372680},
	{High: 64.31, Low: 62.62, Volume: 42476356},
	{High: 63.43, Low: 62.73, Volume: 29504176},
	{High: 62.85, Low: 61.95, Volume: 33098600},
	{High: 62.7, Low: 62.06, Volume: 30577960},
	{High: 63.18, Low: 62.69, Volume: 35693928},
	{High: 62.47, Low: 61.54, Volume: 49768136},
	{High: 64.16, Low: 63.21, Volume: 44759968},
	{High: 64.38, Low: 63.87, Volume: 33425504},
	{High: 64.89, Low: 64.29, Volume: 15895085},
	{High: 65.25, Low: 64.48, Volume: 37015388},
	{High: 64.69, Low: 63.65, Volume: 40672116},
	{High: 64.26, Low: 63.68, Volume: 35627200},
	{High: 64.51, Low: 63.12, Volume: 47337336},
	{High: 63.46, Low: 62.5, Volume: 43373576},
	{High: 62.69, Low: 61.86, Volume: 57651752},
	{High: 63.52, Low: 62.56, Volume: 32357184},
	{High: 63.52, Low: 62.95, Volume: 27620876},
	{High: 63.74, Low: 62.63, Volume: 42467704},
	{High: 64.58, Low: 63.39, Volume: 44460240},
	{High: 65.31, Low: 64.72, Volume: 52992592},
	{High: 65.1, Low: 64.21, Volume: 40561552},
	{High: 63.68, Low: 62.51, Volume: 48636228},
	{High: 63.66, Low: 62.55, Volume: 57230032},
	{High: 62.95, Low: 62.15, Volume: 46260856},
	{High: 63.73, Low: 62.97, Volume: 41926492},
	{High: 64.99, Low: 63.64, Volume: 42620976},
	{High: 65.31, Low: 64.6, Volume: 37809176},
}

var pivotPrices = []Price{
	{Timestamp: day(0), High: 62.34, Low: 61.37, Close: 62.15},
	{Timestamp: day(1), High: 62.05, Low: 60.69, Close: 60.81},
}

var momentumCloses = []float64{
	52, 51, 51.5, 48.5, 53, 53.5, 53.5, 54, 54, 55,
}

var stdDevCloses = []float64{
	52.22, 52.78, 53.02, 53.67, 53.67, 53.74, 53.45, 53.72, 53.39, 52.51,
	52.32, 51.45, 51.6, 52.43, 52.47, 52.91, 52.07, 53.12, 52.77, 52.73,
	52.09, 53.19, 53.73, 53.87, 53.85, 53.88, 54.08, 54.14, 54.5, 54.3,
	54.4, 54.16,
}

var trixCloses = []float64{
	102.32, 105.54, 106.59, 107.39, 107.45, 109.08, 109.07, 109.1, 106.09, 106.72,
	107.9, 106.5, 108.88, 109.82, 110, 97, 110.96, 110.24, 109.7, 109.68,
	112.16, 111.62, 112.37, 112.25, 111.7, 112.39, 111.78, 108.72, 108.05, 107.73,
	107.68,
}

var tsiCloses = []float64{
	1390.69, 1399.98, 1403.36, 1397.91, 1405.82, 1402.31, 1391.57, 1369.1, 1369.58, 1363.72,
	1354.58, 1357.99, 1353.39, 1338.35, 1330.66, 1324.8, 1304.86, 1295.22, 1315.99, 1316.63,
	1318.86, 1320.68, 1317.82, 1332.42, 1313.32, 1310.33, 1278.04, 1278.18, 1285.5, 1315.13,
	1314.99, 1325.66, 1308.93, 1324.18, 1314.88, 1329.1, 1342.84, 1344.78, 1357.98, 1355.69,
	1325.51, 1335.02, 1313.72, 1319.99, 1331.85, 1329.04, 1362.16, 1365.51, 1374.02, 1367.58,
	1354.68, 1352.46, 1341.47, 1341.45, 1334.76, 1356.78, 1353.64, 1363.67, 1372.78, 1376.51,
	1362.66, 1350.52, 1338.31, 1337.89, 1360.02, 1385.97, 1385.3, 1379.32, 1375.32, 1365,
	1390.99, 1394.23, 1401.35, 1402.22, 1402.8, 1405.87, 1404.11, 1403.93, 1405.53, 1415.51,
	1418.16, 1418.13, 1413.17, 1413.49, 1402.08, 1411.13, 1410.44, 1409.3,
}

var uoPrices = []Price{
	{High: 57.93, Low: 56.52, Close: 57.57},
	{High: 58.46, Low: 57.07, Close: 57.67},
	{High: 57.76, Low: 56.44, Close: 56.92},
	{High: 59.88, Low: 57.53, Close: 58.47},
	{High: 59.02, Low: 57.58, Close: 58.74},
	{High: 60.18, Low: 57.89, Close: 60.01},
	{High: 60.29, Low: 58.01, Close: 58.45},
	{High: 59.86, Low: 58.43, Close: 59.18},
	{High: 59.78, Low: 58.45, Close: 58.67},
	{High: 59.73, Low: 58.58, Close: 58.87},
	{High: 59.6, Low: 58.54, Close: 59.3},
	{High: 62.96, Low: 59.62, Close: 62.57},
	{High: 62.27, Low: 61.36, Close: 62.02},
	{High: 63.06, Low: 61.25, Close: 62.05},
	{High: 63.74, Low: 62.19, Close: 62.52},
	{High: 62.74, Low: 61.02, Close: 62.37},
	{High: 63.48, Low: 61.57, Close: 63.4},
	{High: 63.23, Low: 60.79, Close: 61.9},
	{High: 62.14, Low: 60.34, Close: 60.54},
	{High: 60.5, Low: 58.2, Close: 59.09},
	{High: 59.89, Low: 58.91, Close: 59.01},
	{High: 60.32, Low: 59.09, Close: 59.39},
	{High: 59.71, Low: 58.59, Close: 59.21},
	{High: 62.22, Low: 59.44, Close: 59.66},
	{High: 59.74, Low: 57.33, Close: 59.07},
	{High: 59.94, Low: 59.11, Close: 59.9},
	{High: 59.65, Low: 58.87, Close: 59.29},
	{High: 59.37, Low: 58.24, Close: 59.12},
	{High: 60.21, Low: 58.26, Close: 59.68},
	{High: 61.7, Low: 60.58, Close: 61.48},
}

var adxPrices = []Price{
	{High: 30.2, Low: 29.41, Close: 29.87},
	{High: 30.28, Low: 29.32, Close: 30.24},
	{High: 30.45, Low: 29.96, Close: 30.1},
	{High: 29.35, Low: 28.74, Close: 28.9},
	{High: 29.35, Low: 28.56, Close: 28.92},
	{High: 29.29, Low: 28.41, Close: 28.48},
	{High: 28.83, Low: 28.08, Close: 28.56},
	{High: 28.73, Low: 27.43, Close: 27.56},
	{High: 28.67, Low: 27.66, Close: 28.47},
	{High: 28.85, Low: 27.83, Close: 28.28},
	{High: 28.64, Low: 27.4, Close: 27.49},
	{High: 27.68, Low: 27.09, Close: 27.23},
	{High: 27.21, Low: 26.18, Close: 26.35},
	{High: 26.87, Low: 26.13, Close: 26.33},
	{High: 27.41, Low: 26.63, Close: 27.03},
	{High: 26.94, Low: 26.13, Close: 26.22},
	{High: 26.52, Low: 25.43, Close: 26.01},
	{High: 26.52, Low: 25.35, Close: 25.46},
	{High: 27.09, Low: 25.88, Close: 27.03},
	{High: 27.69, Low: 26.96, Close: 27.45},
	{High: 28.45, Low: 27.14, Close: 28.36},
	{High: 28.53, Low: 28.01, Close: 28.43},
	{High: 28.67, Low: 27.88, Close: 27.95},
	{High: 29.01, Low: 27.99, Close: 29.01},
	{High: 29.87, Low: 28.76, Close: 29.38},
	{High: 29.8, Low: 29.14, Close: 29.36},
	{High: 29.75, Low: 28.71, Close: 28.91},
	{High: 30.65, Low: 28.93, Close: 30.61},
	{High: 30.6, Low: 30.03, Close: 30.05},
	{High: 30.76, Low: 29.39, Close: 30.19},
	{High: 31.17, Low: 30.14, Close: 31.12},
	{High: 30.89, Low: 30.43, Close: 30.54},
	{High: 30.04, Low: 29.35, Close: 29.78},
	{High: 30.66, Low: 29.99, Close: 30.04},
	{High: 30.6, Low: 29.52, Close: 30.49},
	{High: 31.97, Low: 30.94, Close: 31.47},
	{High: 32.1, Low: 31.54, Close: 32.05},
	{High: 32.03, Low: 31.36, Close: 31.97},
	{High: 31.63, Low: 30.92, Close: 31.13},
	{High: 31.85, Low: 31.2, Close: 31.66},
}

var chaikinVolatilityPrices = []Price{
	{High: 62.34, Low: 61.37},
	{High: 62.05, Low: 60.69},
	{High: 62.27, Low: 60.1},
	{High: 60.79, Low: 58.61},
	{High: 59.93, Low: 58.71},
	{High: 61.75, Low: 59.86},
	{High: 60, Low: 57.97},
	{High: 59, Low: 58.02},
	{High: 59.07, Low: 57.48},
	{High: 59.22, Low: 58.3},
	{High: 58.75, Low: 57.83},
	{High: 58.65, Low: 57.86},
	{High: 58.47, Low: 57.91},
	{High: 58.25, Low: 57.83},
	{High: 58.35, Low: 57.53},
	{High: 59.86, Low: 58.58},
	{High: 59.53, Low: 58.3},
	{High: 62.1, Low: 58.53},
	{High: 62.16, Low: 59.8},
	{High: 62.67, Low: 60.93},
	{High: 62.38, Low: 60.15},
	{High: 63.73, Low: 62.26},
	{High: 63.85, Low: 63},
	{High: 66.15, Low: 63.58},
	{High: 65.34, Low: 64.07},
	{High: 66.48, Low: 65.2},
	{High: 65.23, Low: 63.21},
	{High: 63.4, Low: 61.88},
	{High: 63.18, Low: 61.11},
	{High: 62.7, Low: 61.25},
}

var cciPrices = []Price{
	{Open: 23.94, High: 24.2, Low: 23.85, Close: 23.89},
	{Open: 23.85, High: 24.07, Low: 23.72, Close: 23.95},
	{Open: 23.94, High: 24.04, Low: 23.64, Close: 23.67},
	{Open: 23.73, High: 23.87, Low: 23.37, Close: 23.78},
	{Open: 23.6, High: 23.67, Low: 23.46, Close: 23.5},
	{Open: 23.46, High: 23.59, Low: 23.18, Close: 23.32},
	{Open: 23.53, High: 23.8, Low: 23.4, Close: 23.75},
	{Open: 23.73, High: 23.8, Low: 23.57, Close: 23.79},
	{Open: 24.09, High: 24.3, Low: 24.05, Close: 24.14},
	{Open: 23.95, High: 24.15, Low: 23.77, Close: 23.81},
	{Open: 23.92, High: 24.05, Low: 23.6, Close: 23.78},
	{Open: 24.04, High: 24.06, Low: 23.84, Close: 23.86},
	{Open: 23.83, High: 23.88, Low: 23.64, Close: 23.7},
	{Open: 24.05, High: 25.14, Low: 23.94, Close: 24.96},
	{Open: 24.89, High: 25.2, Low: 24.74, Close: 24.88},
	{Open: 24.95, High: 25.07, Low: 24.77, Close: 24.96},
	{Open: 24.91, High: 25.22, Low: 24.9, Close: 25.18},
	{Open: 25.24, High: 25.37, Low: 24.93, Close: 25.07},
	{Open: 25.13, High: 25.36, Low: 24.96, Close: 25.27},
	{Open: 25.26, High: 25.26, Low: 24.93, Close: 25},
	{Open: 24.74, High: 24.82, Low: 24.21, Close: 24.46},
	{Open: 24.36, High: 24.44, Low: 24.21, Close: 24.28},
	{Open: 24.49, High: 24.65, Low: 24.43, Close: 24.62},
	{Open: 24.7, High: 24.84, Low: 24.44, Close: 24.58},
	{Open: 24.65, High: 24.75, Low: 24.2, Close: 24.53},
	{Open: 24.48, High: 24.51, Low: 24.25, Close: 24.35},
	{Open: 24.46, High: 24.68, Low: 24.21, Close: 24.34},
	{Open: 24.62, High: 24.67, Low: 24.15, Close: 24.23},
	{Open: 23.81, High: 23.84, Low: 23.63, Close: 23.76},
	{Open: 23.91, High: 24.3, Low: 23.76, Close: 24.2},
}

var massIndexPrices = []Price{
	{High: 1081.58, Low: 1067.08},
	{High: 1063.2, Low: 1046.68},
	{High: 1059.38, Low: 1039.83},
	{High: 1061.45, Low: 1045.4},
	{High: 1065.21, Low: 1039.7},
	{High: 1064.4, Low: 1048.79},
	{High: 1055.14, Low: 1040.88},
	{High: 1081.3, Low: 1049.72},
	{High: 1090.1, Low: 1080.39},
	{High: 1105.1, Low: 1093.61},
	{High: 1102.6, Low: 1091.15},
	{High: 1103.26, Low: 1092.36},
	{High: 1110.27, Low: 1101.15},
	{High: 1110.88, Low: 1103.92},
	{High: 1123.87, Low: 1113.38},
	{High: 1127.36, Low: 1115.58},
	{High: 1126.46, Low: 1114.63},
	{High: 1125.44, Low: 1118.88},
	{High: 1131.47, Low: 1122.43},
	{High: 1144.86, Low: 1126.57},
	{High: 1148.59, Low: 1136.22},
	{High: 1144.38, Low: 1131.58},
	{High: 1136.77, Low: 1122.79},
	{High: 1148.9, Low: 1131.69},
	{High: 1149.92, Low: 1142},
	{High: 1150, Low: 1132.09},
	{High: 1148.63, Low: 1140.26},
	{High: 1157.16, Low: 1136.08},
	{High: 1150.3, Low: 1139.42},
	{High: 1148.16, Low: 1131.87},
	{High: 1162.76, Low: 1140.68},
	{High: 1162.33, Low: 1154.85},
	{High: 1163.87, Low: 1151.41},
	{High: 1167.73, Low: 1155.58},
	{High: 1168.68, Low: 1162.02},
	{High: 1172.58, Low: 1155.71},
	{High: 1184.38, Low: 1171.32},
	{High: 1178.89, Low: 1166.71},
	{High: 1181.2, Low: 1167.12},
	{High: 1185.53, Low: 1174.55},
	{High: 1178.64, Low: 1159.71},
	{High: 1182.94, Low: 1166.74},
	{High: 1189.43, Low: 1171.17},
	{High: 1183.93, Low: 1178.99},
	{High: 1196.14, Low: 1184.74},
	{High: 1187.11, Low: 1177.72},
}

var mfiPrices = []Price{
	{High: 24.83, Low: 24.32, Close: 24.75, Volume: 18730},
	{High: 24.76, Low: 24.6, Close: 24.71, Volume: 12272},
	{High: 25.16, Low: 24.78, Close: 25.04, Volume: 24691},
	{High: 25.58, Low: 24.95, Close: 25.55, Volume: 18358},
	{High: 25.68, Low: 24.81, Close: 25.07, Volume: 22964},
	{High: 25.34, Low: 25.06, Close: 25.11, Volume: 15919},
	{High: 25.29, Low: 24.85, Close: 24.89, Volume: 16067},
	{High: 25.13, Low: 24.75, Close: 25, Volume: 16568},
	{High: 25.28, Low: 24.93, Close: 25.05, Volume: 16019},
	{High: 25.39, Low: 25.03, Close: 25.34, Volume: 9774},
	{High: 25.54, Low: 25.05, Close: 25.06, Volume: 22573},
	{High: 25.6, Low: 25.06, Close: 25.45, Volume: 12987},
	{High: 25.74, Low: 25.54, Close: 25.56, Volume: 10907},
	{High: 25.72, Low: 25.46, Close: 25.56, Volume: 5799},
	{High: 25.67, Low: 25.29, Close: 25.41, Volume: 7395},
	{High: 25.45, Low: 25.17, Close: 25.37, Volume: 5818},
	{High: 25.32, Low: 24.92, Close: 25.04, Volume: 7165},
	{High: 25.26, Low: 24.91, Close: 24.92, Volume: 5673},
	{High: 25.04, Low: 24.83, Close: 24.88, Volume: 5625},
	{High: 25.01, Low: 24.71, Close: 24.97, Volume: 5023},
	{High: 25.31, Low: 25.03, Close: 25.05, Volume: 7457},
	{High: 25.12, Low: 24.34, Close: 24.45, Volume: 11798},
	{High: 24.69, Low: 24.27, Close: 24.57, Volume: 12366},
	{High: 24.55, Low: 23.89, Close: 24.02, Volume: 13295},
	{High: 24.27, Low: 23.78, Close: 23.88, Volume: 9257},
	{High: 24.27, Low: 23.72, Close: 24.2, Volume: 9691},
	{High: 24.6, Low: 24.2, Close: 24.28, Volume: 8870},
	{High: 24.48, Low: 24.24, Close: 24.33, Volume: 7169},
	{High: 24.56, Low: 23.43, Close: 24.44, Volume: 11356},
	{High: 25.16, Low: 24.27, Close: 25, Volume: 13379},
}

var obvPrices = []Price{
	{Close: 24.75, Volume: 18730},
	{Close: 24.71, Volume: 12272},
	{Close: 25.04, Volume: 24691},
	{Close: 25.55, Volume: 18358},
	{Close: 25.07, Volume: 22964},
	{Close: 25.11, Volume: 15919},
	{Close: 24.89, Volume: 16067},
	{Close: 25, Volume: 16568},
	{Close: 25.05, Volume: 16019},
	{Close: 25.34, Volume: 9774},
	{Close: 25.06, Volume: 22573},
	{Close: 25.45, Volume: 12987},
	{Close: 25.56, Volume: 10907},
	{Close: 25.56, Volume: 5799},
	{Close: 25.41, Volume: 7395},
	{Close: 25.37, Volume: 5818},
	{Close: 25.04, Volume: 7165},
	{Close: 24.92, Volume: 5673},
	{Close: 24.88, Volume: 5625},
	{Close: 24.97, Volume: 5023},
	{Close: 25.05, Volume: 7457},
	{Close: 24.45, Volume: 11798},
	{Close: 24.57, Volume: 12366},
	{Close: 24.02, Volume: 13295},
	{Close: 23.88, Volume: 9257},
	{Close: 24.2, Volume: 9691},
	{Close: 24.28, Volume: 8870},
	{Close: 24.33, Volume: 7169},
	{Close: 24.44, Volume: 11356},
	{Close: 25, Volume: 13379},
}

var pviPrices = []Price{
	{Close: 1355.69, Volume: 2739550000},
	{Close: 1325.51, Volume: 3119460000},
	{Close: 1335.02, Volume: 3466880000},
	{Close: 1313.72, Volume: 2577120000},
	{Close: 1319.99, Volume: 2480450000},
	{Close: 1331.85, Volume: 2329790000},
	{Close: 1329.04, Volume: 2793070000},
	{Close: 1362.16, Volume: 3378780000},
	{Close: 1365.51, Volume: 2417590000},
	{Close: 1374.02, Volume: 1442810000},
	{Close: 1367.58, Volume: 2122560000},
	{Close: 1354.68, Volume: 2083560000},
	{Close: 1352.46, Volume: 2103850000},
	{Close: 1341.47, Volume: 2526190000},
	{Close: 1341.45, Volume: 2491890000},
	{Close: 1334.76, Volume: 2730320000},
	{Close: 1356.78, Volume: 2311590000},
	{Close: 1353.64, Volume: 2135420000},
	{Close: 1363.67, Volume: 2642720000},
	{Close: 1372.78, Volume: 2701350000},
	{Close: 1376.51, Volume: 3122260000},
	{Close: 1362.66, Volume: 3125070000},
	{Close: 1350.52, Volume: 2728040000},
	{Close: 1338.31, Volume: 2844190000},
	{Close: 1337.89, Volume: 2810240000},
	{Close: 1360.02, Volume: 3256420000},
	{Close: 1385.97, Volume: 3261500000},
	{Close: 1385.3, Volume: 2296260000},
	{Close: 1379.32, Volume: 2701690000},
	{Close: 1375.32, Volume: 2935850000},
}

var rocCloses = []float64{
	11045.27, 11167.32, 11008.61, 11151.83, 10926.77, 10868.12, 10520.32, 10380.43, 10785.14, 10748.26,
	10896.91, 10782.95, 10620.16, 10625.83, 10510.95, 10444.37, 10068.01, 10193.39, 10066.57, 10043.75,
}

var stochRSICloses = []float64{
	54.09, 59.9, 58.2, 59.76, 52.35, 52.82, 56.94, 57.47, 55.26, 57.51,
	54.8, 51.47, 56.16, 58.34, 56.02, 60.22, 56.75, 57.38, 50.23, 57.06,
	61.51, 63.69, 66.22, 69.16, 70.73, 67.79, 68.82, 62.38, 67.59, 67.59,
}

var stochasticPrices = []Price{
	{High: 127.01, Low: 125.36},
	{High: 127.62, Low: 126.16},
	{High: 126.59, Low: 124.93},
	{High: 127.35, Low: 126.09},
	{High: 128.17, Low: 126.82},
	{High: 128.43, Low: 126.48},
	{High: 127.37, Low: 126.03},
	{High: 126.42, Low: 124.83},
	{High: 126.9, Low: 126.39},
	{High: 126.85, Low: 125.72},
	{High: 125.65, Low: 124.56},
	{High: 125.72, Low: 124.57},
	{High: 127.16, Low: 125.07},
	{High: 127.72, Low: 126.86, Close: 127.29},
	{High: 127.69, Low: 126.63, Close: 127.18},
	{High: 128.22, Low: 126.8, Close: 128.01},
	{High: 128.27, Low: 126.71, Close: 127.11},
	{High: 128.09, Low: 126.8, Close: 127.73},
	{High: 128.27, Low: 126.13, Close: 127.06},
	{High: 127.74, Low: 125.92, Close: 127.33},
	{High: 128.77, Low: 126.99, Close: 128.71},
	{High: 129.29, Low: 127.81, Close: 127.87},
	{High: 130.06, Low: 128.47, Close: 128.58},
	{High: 129.12, Low: 128.06, Close: 128.6},
	{High: 129.29, Low: 127.61, Close: 127.93},
	{High: 128.47, Low: 127.6, Close: 128.11},
	{High: 128.09, Low: 127, Close: 127.6},
	{High: 128.65, Low: 126.9, Close: 127.6},
	{High: 129.14, Low: 127.49, Close: 128.69},
	{High: 128.64, Low: 127.4, Close: 128.27},
}

var vortexPrices = []Price{
	{High: 1380.39, Low: 1371.21, Close: 1376.51},
	{High: 1376.51, Low: 1362.19, Close: 1362.66},
	{High: 1362.34, Low: 1337.56, Close: 1350.52},
	{High: 1351.53, Low: 1329.24, Close: 1338.31},
	{High: 1343.98, Low: 1331.5, Close: 1337.89},
	{High: 1363.13, Low: 1338.17, Close: 1360.02},
	{High: 1389.19, Low: 1360.05, Close: 1385.97},
	{High: 1391.74, Low: 1381.37, Close: 1385.3},
	{High: 1387.16, Low: 1379.17, Close: 1379.32},
	{High: 1385.03, Low: 1373.35, Close: 1375.32},
	{High: 1375.13, Low: 1354.65, Close: 1365},
	{High: 1394.16, Low: 1365.45, Close: 1390.99},
	{High: 1399.63, Low: 1391.04, Close: 1394.23},
	{High: 1407.14, Low: 1394.46, Close: 1401.35},
	{High: 1404.14, Low: 1396.13, Close: 1402.22},
	{High: 1405.95, Low: 1398.8, Close: 1402.8},
	{High: 1405.98, Low: 1395.62, Close: 1405.87},
	{High: 1405.87, Low: 1397.32, Close: 1404.11},
	{High: 1410.03, Low: 1400.6, Close: 1403.93},
	{High: 1407.73, Low: 1401.83, Close: 1405.53},
	{High: 1417.44, Low: 1404.15, Close: 1415.51},
	{High: 1418.71, Low: 1414.67, Close: 1418.16},
	{High: 1418.13, Low: 1412.12, Close: 1418.13},
	{High: 1426.68, Low: 1410.86, Close: 1413.17},
	{High: 1416.12, Low: 1406.78, Close: 1413.49},
	{High: 1413.49, Low: 1400.5, Close: 1402.08},
	{High: 1413.46, Low: 1398.04, Close: 1411.13},
	{High: 1416.17, Low: 1409.11, Close: 1410.44},
	{High: 1413.63, Low: 1405.59, Close: 1409.3},
	{High: 1413.95, Low: 1406.57, Close: 1410.49},
}

var emaValues = []float64{
	22.27, 22.19, 22.08, 22.17, 22.18, 22.13, 22.23, 22.43, 22.24, 22.29,
	22.15, 22.39, 22.38, 22.61, 23.36, 24.05, 23.75, 23.83, 23.95, 23.63,
	23.82, 23.87, 23.65, 23.19, 23.1, 23.33, 22.68, 23.1, 22.4, 22.17,
}

var rsiCloses = []float64{
	44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.1, 45.42, 45.84, 46.08,
	45.89, 46.03, 45.61, 46.28, 46.28, 46, 46.03, 46.41, 46.22, 45.64,
	46.21, 46.25, 45.71, 46.45, 45.78, 45.35, 44.03, 44.18, 44.22, 44.57,
	43.42, 42.66, 43.13,
}
