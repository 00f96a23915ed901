package generator

const emptyContainer = `<div style="text-align: center; color: #6b7280; padding: 2rem;">Empty container</div>`

const sliderPrev = `<button class="slider-prev" style="position: absolute; left: 10px; top: 50%; transform: translateY(-50%); background: rgba(0,0,0,0.5); color: white; border: none; padding: 10px; border-radius: 50%; cursor: pointer;">‹</button>`

const sliderNext = `<button class="slider-next" style="position: absolute; right: 10px; top: 50%; transform: translateY(-50%); background: rgba(0,0,0,0.5); color: white; border: none; padding: 10px; border-radius: 50%; cursor: pointer;">›</button>`

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>`

const pageBodyOpen = `</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <div class="container">
`

const pageBodyClose = `
    </div>
    <script src="script.js"></script>
</body>
</html>
`

const stylesheet = `/* Generated Website Styles */
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;
    line-height: 1.6;
    color: #333;
}

.container {
    max-width: 1200px;
    margin: 0 auto;
    padding: 20px;
}

/* Slider Styles */
.slider {
    position: relative;
    overflow: hidden;
}

.slider-container {
    display: flex;
    transition: transform 0.3s ease;
}

.slider img {
    width: 100%;
    flex-shrink: 0;
}

.slider-prev,
.slider-next {
    position: absolute;
    top: 50%;
    transform: translateY(-50%);
    background: rgba(0, 0, 0, 0.5);
    color: white;
    border: none;
    padding: 10px 15px;
    border-radius: 50%;
    cursor: pointer;
    font-size: 18px;
    z-index: 1;
}

.slider-prev {
    left: 10px;
}

.slider-next {
    right: 10px;
}

.slider-prev:hover,
.slider-next:hover {
    background: rgba(0, 0, 0, 0.7);
}

.slider-dots {
    text-align: center;
    margin-top: 15px;
}

.slider-dot {
    display: inline-block;
    width: 12px;
    height: 12px;
    border-radius: 50%;
    background: #ccc;
    margin: 0 5px;
    cursor: pointer;
    transition: background 0.3s ease;
}

.slider-dot.active {
    background: #333;
}

/* Responsive Design */
@media (max-width: 768px) {
    .container {
        padding: 10px;
    }

    .slider {
        max-width: 100%;
    }
}
`

const script = `// Generated Website JavaScript
document.addEventListener('DOMContentLoaded', function() {
    var sliders = document.querySelectorAll('.slider');

    sliders.forEach(function(slider) {
        initSlider(slider);
    });
});

function initSlider(slider) {
    var container = slider.querySelector('.slider-container');
    var images = slider.querySelectorAll('.slider-container img');
    var prevBtn = slider.querySelector('.slider-prev');
    var nextBtn = slider.querySelector('.slider-next');
    var dots = slider.querySelectorAll('.slider-dot');

    var currentIndex = 0;
    var totalSlides = images.length;

    if (totalSlides === 0) return;

    function updateSlider() {
        var translateX = -currentIndex * 100;
        container.style.transform = 'translateX(' + translateX + '%)';

        dots.forEach(function(dot, index) {
            if (index === currentIndex) {
                dot.classList.add('active');
            } else {
                dot.classList.remove('active');
            }
        });
    }

    function nextSlide() {
        currentIndex = (currentIndex + 1) % totalSlides;
        updateSlider();
    }

    function prevSlide() {
        currentIndex = (currentIndex - 1 + totalSlides) % totalSlides;
        updateSlider();
    }

    function goToSlide(index) {
        currentIndex = index;
        updateSlider();
    }

    if (nextBtn) {
        nextBtn.addEventListener('click', nextSlide);
    }

    if (prevBtn) {
        prevBtn.addEventListener('click', prevSlide);
    }

    dots.forEach(function(dot, index) {
        dot.addEventListener('click', function() {
            goToSlide(index);
        });
    });

    if (slider.dataset.autoplay === 'true') {
        setInterval(nextSlide, 3000);
    }

    updateSlider();
}
`
